package cache

import "time"

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// Config selects and configures the cache backend.
type Config struct {
	// Driver is one of memory, redis or none.
	Driver string `mapstructure:"driver" default:"memory"`
	// TTLSeconds is how long cached dashboard values live. 0 disables caching.
	TTLSeconds int         `mapstructure:"ttl_seconds" default:"30"`
	Redis      RedisConfig `mapstructure:"redis"`
}

// TTL returns the configured time-to-live.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host      string `mapstructure:"host" default:"localhost"`
	Port      int    `mapstructure:"port" default:"6379"`
	Password  string `mapstructure:"password" default:""`
	DB        int    `mapstructure:"db" default:"0"`
	KeyPrefix string `mapstructure:"key_prefix" default:"sync-gateway:"`
}

// KeyDashboardStats caches the dashboard row counts. Pushes invalidate it.
const KeyDashboardStats = "dashboard:stats"
