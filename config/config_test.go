package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, []int{250, 500, 1000, 2000, 5000}, cfg.Packs.DefaultSizes)
		assert.False(t, cfg.Auth.Enabled)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "pack_planner", cfg.Database.DatabaseName)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CACHE_SIZE", "500")
		_ = os.Setenv("CACHE_TTL", "10m")
		_ = os.Setenv("PACK_SIZES", "23,31,53")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, []int{23, 31, 53}, cfg.Packs.DefaultSizes)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})

	t.Run("invalid pack sizes keep defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PACK_SIZES", "invalid,-50,0")
		defer os.Clearenv()

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []int{250, 500, 1000, 2000, 5000}, cfg.Packs.DefaultSizes)
	})

	t.Run("cors origins extend defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://ops.example.com, ")
		defer os.Clearenv()

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://ops.example.com",
		}, cfg.Server.CORSOrigins)
	})
}

func TestLoad_File(t *testing.T) {
	t.Run("file overrides defaults", func(t *testing.T) {
		os.Clearenv()
		path := writeConfigFile(t, `
server:
  port: "7070"
  rate_window: 15s
log:
  level: warn
packs:
  default_sizes: [23, 31, 53]
auth:
  enabled: true
  api_key_hashes:
    - "$2a$10$abcdefghijklmnopqrstuu"
database:
  enabled: true
  logs_ttl: 48h
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, []int{23, 31, 53}, cfg.Packs.DefaultSizes)
		assert.True(t, cfg.Auth.Enabled)
		assert.Len(t, cfg.Auth.APIKeyHashes, 1)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, 48*time.Hour, cfg.Database.LogsTTL)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		os.Clearenv()
		path := writeConfigFile(t, "server:\n  port: \"7070\"\n")
		_ = os.Setenv("PORT", "6060")
		defer os.Clearenv()

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "6060", cfg.Server.Port)
	})

	t.Run("file from CONFIG_FILE", func(t *testing.T) {
		os.Clearenv()
		path := writeConfigFile(t, "cache:\n  size: 42\n")
		_ = os.Setenv("CONFIG_FILE", path)
		defer os.Clearenv()

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 42, cfg.Cache.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		os.Clearenv()

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		os.Clearenv()
		path := writeConfigFile(t, "server: [unclosed\n")

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestParseIntSlice(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{input: "", expected: nil},
		{input: " 100 , 200 , 300 ", expected: []int{100, 200, 300}},
		{input: "100,invalid,200,-50,300", expected: []int{100, 200, 300}},
		{input: "x", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIntSlice(tt.input))
		})
	}
}
