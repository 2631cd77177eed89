// Package config loads the gateway configuration.
//
// Values come from the environment, optionally seeded from a .env file, and
// fall back to the `default` struct tags of each section. Keys map to
// environment variables by upper-casing and replacing dots with underscores,
// e.g. database.driver is DATABASE_DRIVER and cache.redis.host is
// CACHE_REDIS_HOST.
//
// # Sections
//
//   - server: port, API key, body limit
//   - database: driver (mysql, postgres, sqlite) and connection details
//   - storage: S3/MinIO credentials and bucket
//   - archive: payload archiving switch and key prefix
//   - cache: dashboard statistics cache (memory, redis, none)
//   - dashboard: page sizes and the activity time zone
//   - log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
