package archive

// Config controls archiving of inbound payloads.
type Config struct {
	// Enabled turns archiving on. The bucket comes from the storage section.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Prefix is the root of every archived object key.
	Prefix string `mapstructure:"prefix" default:"sync"`
}
