package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	Environment string `toml:"-"`

	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// tracing
	HoneycombEnabled bool `toml:"honeycomb_enabled"`

	AllowedOrigins []string `toml:"allowed_origins"`
	MaxBodyBytes   int64    `toml:"max_body_bytes"`

	// remote coaching api
	ApiBaseURL        string `toml:"api_base_url"`
	ApiTimeoutSeconds int    `toml:"api_timeout_seconds"`

	// profile persistence
	StorageBackend string `toml:"storage_backend"` // file | redis | sqlite | memory
	StoragePath    string `toml:"storage_path"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// allowed requests per minute on routes that call the remote api (0 disables)
	RemoteCallsPerMin int `toml:"remote_calls_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config [%s]: %w", env, err)
	}

	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 4200
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.ApiBaseURL == "" {
		c.ApiBaseURL = "http://localhost:8080/fit"
	}
	if c.ApiTimeoutSeconds == 0 {
		c.ApiTimeoutSeconds = 15
	}
	if c.StorageBackend == "" {
		c.StorageBackend = StorageFile
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:4200", "http://localhost:8100"}
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = 1 << 20
	}
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageFile, StorageSQLite:
		if c.StoragePath == "" {
			return fmt.Errorf("storage_path is required for %s storage", c.StorageBackend)
		}
	case StorageRedis:
		if c.RedisHost == "" {
			return fmt.Errorf("redis_host is required for redis storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
	return nil
}
