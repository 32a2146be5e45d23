package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pack-planner/config"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  port: \"9000\"\npacks:\n  default_sizes: [23, 31, 53]\n"), 0o600))

	tests := []struct {
		name     string
		args     []string
		validate func(*testing.T, config.Config)
	}{
		{
			name: "defaults",
			args: nil,
			validate: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, config.Default().Server.Port, cfg.Server.Port)
				assert.Equal(t, config.Default().Server.RateLimit, cfg.Server.RateLimit)
				assert.False(t, cfg.Database.Enabled)
			},
		},
		{
			name: "config file",
			args: []string{"--config", file},
			validate: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "9000", cfg.Server.Port)
				assert.Equal(t, []int{23, 31, 53}, cfg.Packs.DefaultSizes)
			},
		},
		{
			name: "flags override file",
			args: []string{"-c", file, "--port", "9100", "--pack-sizes", "250,500"},
			validate: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "9100", cfg.Server.Port)
				assert.Equal(t, []int{250, 500}, cfg.Packs.DefaultSizes)
			},
		},
		{
			name: "zero disables rate limit and cache",
			args: []string{"--rate-limit", "0", "--cache-size", "0"},
			validate: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 0, cfg.Server.RateLimit)
				assert.Equal(t, 0, cfg.Cache.Size)
			},
		},
		{
			name: "mongo uri enables database",
			args: []string{"--mongo-uri", "mongodb://db:27017", "--auth", "--log-level", "debug"},
			validate: func(t *testing.T, cfg config.Config) {
				assert.True(t, cfg.Database.Enabled)
				assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
				assert.True(t, cfg.Auth.Enabled)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown log level", args: []string{"--log-level", "verbose"}},
		{name: "no positive pack sizes", args: []string{"--pack-sizes", "0,-5,abc"}},
		{name: "missing config file", args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}},
		{name: "unknown flag", args: []string{"--verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}
