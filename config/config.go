// Package config provides configuration management for the pack planner.
//
// Values are resolved from defaults, then an optional YAML file, then
// environment variables. Command-line flags are applied on top by cmd/main.go.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Cache    CacheConfig    `yaml:"cache"`
	Packs    PacksConfig    `yaml:"packs"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        `yaml:"port"`
	RateLimit      int           `yaml:"rate_limit"`
	RateWindow     time.Duration `yaml:"rate_window"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	SwaggerUser    string        `yaml:"swagger_user"`
	SwaggerPass    string        `yaml:"swagger_pass"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// CacheConfig holds plan cache configuration.
type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// PacksConfig holds the registry defaults.
type PacksConfig struct {
	DefaultSizes []int `yaml:"default_sizes"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled        bool          `yaml:"enabled"`
	APIKeys        []string      `yaml:"api_keys"`
	APIKeyHashes   []string      `yaml:"api_key_hashes"`
	JWTSecretKey   string        `yaml:"jwt_secret_key"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"`
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string        `yaml:"uri"`
	DatabaseName string        `yaml:"database"`
	LogsTTL      time.Duration `yaml:"logs_ttl"`
	Enabled      bool          `yaml:"enabled"`
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int           `yaml:"circuit_breaker_failure_threshold"`
	CircuitBreakerSuccessThreshold int           `yaml:"circuit_breaker_success_threshold"`
	CircuitBreakerTimeout          time.Duration `yaml:"circuit_breaker_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			CORSOrigins:    defaultCORSOrigins(),
			RequestTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Cache: CacheConfig{
			Size: 1000,
			TTL:  5 * time.Minute,
		},
		Packs: PacksConfig{
			DefaultSizes: []int{250, 500, 1000, 2000, 5000},
		},
		Auth: AuthConfig{
			JWTSecretKey:   "change-me-in-production",
			AccessTokenTTL: 15 * time.Minute,
		},
		Database: DatabaseConfig{
			URI:                            "mongodb://localhost:27017",
			DatabaseName:                   "pack_planner",
			LogsTTL:                        30 * 24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
	}
}

// Load resolves the configuration. path names an optional YAML file; when empty
// CONFIG_FILE is consulted. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	s := &cfg.Server
	s.Port = getEnv("PORT", s.Port)
	s.RateLimit = getEnvInt("RATE_LIMIT", s.RateLimit)
	s.RateWindow = getEnvDuration("RATE_WINDOW", s.RateWindow)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		s.CORSOrigins = append(defaultCORSOrigins(), parseList(v)...)
	}
	s.SwaggerUser = getEnv("SWAGGER_USER", s.SwaggerUser)
	s.SwaggerPass = getEnv("SWAGGER_PASS", s.SwaggerPass)
	s.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", s.RequestTimeout)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Pretty = getEnvBool("LOG_PRETTY", cfg.Log.Pretty)

	cfg.Cache.Size = getEnvInt("CACHE_SIZE", cfg.Cache.Size)
	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", cfg.Cache.TTL)

	if sizes := ParseIntSlice(os.Getenv("PACK_SIZES")); len(sizes) > 0 {
		cfg.Packs.DefaultSizes = sizes
	}

	a := &cfg.Auth
	a.Enabled = getEnvBool("AUTH_ENABLED", a.Enabled)
	if v := os.Getenv("API_KEYS"); v != "" {
		a.APIKeys = parseList(v)
	}
	if v := os.Getenv("API_KEY_HASHES"); v != "" {
		a.APIKeyHashes = parseList(v)
	}
	a.JWTSecretKey = getEnv("JWT_SECRET_KEY", a.JWTSecretKey)
	a.AccessTokenTTL = getEnvDuration("JWT_ACCESS_TOKEN_TTL", a.AccessTokenTTL)

	d := &cfg.Database
	d.URI = getEnv("MONGODB_URI", d.URI)
	d.DatabaseName = getEnv("MONGODB_DATABASE", d.DatabaseName)
	d.LogsTTL = getEnvDuration("MONGODB_LOGS_TTL", d.LogsTTL)
	d.Enabled = getEnvBool("MONGODB_ENABLED", d.Enabled)
	d.CircuitBreakerFailureThreshold = getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", d.CircuitBreakerFailureThreshold)
	d.CircuitBreakerSuccessThreshold = getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", d.CircuitBreakerSuccessThreshold)
	d.CircuitBreakerTimeout = getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", d.CircuitBreakerTimeout)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// ParseIntSlice parses a comma separated list of positive integers, skipping
// anything else.
func ParseIntSlice(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		if v, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && v > 0 {
			result = append(result, v)
		}
	}
	return result
}

func parseList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Default origins for local development
func defaultCORSOrigins() []string {
	return []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
}
