package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"sync-gateway/core/archive"
	"sync-gateway/core/cache"
	"sync-gateway/core/database"
	"sync-gateway/core/logger"
	"sync-gateway/core/server"
	"sync-gateway/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the gateway, one section per concern.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds the relational store connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds the S3/MinIO connection used by the archive.
	Storage storage.Config `mapstructure:"storage"`
	// Archive controls payload archiving.
	Archive archive.Config `mapstructure:"archive"`
	// Cache selects the dashboard statistics cache.
	Cache cache.Config `mapstructure:"cache"`
	// Dashboard holds the read-side defaults.
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// DashboardConfig holds paging and calendar settings for the dashboard.
type DashboardConfig struct {
	// PageSize is used when a request does not specify one.
	PageSize int `mapstructure:"page_size" default:"15"`
	// MaxPageSize caps the requested page size.
	MaxPageSize int `mapstructure:"max_page_size" default:"100"`
	// Timezone is the IANA zone in which activity days are counted.
	Timezone string `mapstructure:"timezone" default:"UTC"`
}

// Location resolves Timezone, falling back to UTC. LoadConfig has already
// rejected unknown zones.
func (c DashboardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings that would only fail later at runtime.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("invalid database.driver %q", c.Database.Driver)
	}
	switch c.Cache.Driver {
	case cache.DriverMemory, cache.DriverRedis, cache.DriverNone:
	default:
		return fmt.Errorf("invalid cache.driver %q", c.Cache.Driver)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("invalid cache.ttl_seconds %d", c.Cache.TTLSeconds)
	}
	if c.Dashboard.PageSize <= 0 || c.Dashboard.MaxPageSize < c.Dashboard.PageSize {
		return fmt.Errorf("invalid dashboard page sizes %d/%d", c.Dashboard.PageSize, c.Dashboard.MaxPageSize)
	}
	if _, err := time.LoadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("invalid dashboard.timezone: %w", err)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
