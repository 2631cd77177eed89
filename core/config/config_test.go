package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "sync-archive", cfg.Storage.Bucket)
	assert.False(t, cfg.Archive.Enabled)
	assert.Equal(t, "sync", cfg.Archive.Prefix)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 30, cfg.Cache.TTLSeconds)
	assert.Equal(t, 6379, cfg.Cache.Redis.Port)
	assert.Equal(t, 15, cfg.Dashboard.PageSize)
	assert.Equal(t, 100, cfg.Dashboard.MaxPageSize)
	assert.Equal(t, "UTC", cfg.Dashboard.Timezone)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", "gateway.db")
	t.Setenv("CACHE_REDIS_HOST", "redis.internal")
	t.Setenv("ARCHIVE_ENABLED", "true")
	t.Setenv("DASHBOARD_TIMEZONE", "Europe/Moscow")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gateway.db", cfg.Database.Name)
	assert.Equal(t, "redis.internal", cfg.Cache.Redis.Host)
	assert.True(t, cfg.Archive.Enabled)
	assert.Equal(t, "Europe/Moscow", cfg.Dashboard.Timezone)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_API_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SERVER_API_KEY") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Server.ApiKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"Driver":   {"DATABASE_DRIVER", "oracle"},
		"Cache":    {"CACHE_DRIVER", "memcached"},
		"Timezone": {"DASHBOARD_TIMEZONE", "Mars/Olympus"},
		"PageSize": {"DASHBOARD_PAGE_SIZE", "0"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestDashboardConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, DashboardConfig{Timezone: "UTC"}.Location())
	assert.Equal(t, time.UTC, DashboardConfig{Timezone: "Mars/Olympus"}.Location())
}
