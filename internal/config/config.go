// Package config provides configuration management for Waterline.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	River     RiverConfig     `mapstructure:"river"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// A single pgxpool is shared by Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize  int `mapstructure:"general_pool_size"`
	ProviderPoolSize int `mapstructure:"provider_pool_size"`
}

// PipelineConfig contains pipeline runtime settings.
type PipelineConfig struct {
	// MaxFanOutDepth bounds fan-out recursion per submission (default 3).
	MaxFanOutDepth int `mapstructure:"max_fan_out_depth"`
	// MaxBatchEntities bounds the entity count on a single submission.
	MaxBatchEntities int `mapstructure:"max_batch_entities"`
	// DefaultFreshnessHours is used when skip_if_fresh omits max_age_hours.
	DefaultFreshnessHours int `mapstructure:"default_freshness_hours"`
}

// ProvidersConfig contains adapter HTTP client settings. Credentials and
// endpoints per provider come from the keyed map; the timeout tiers match
// the adapter contract (cheap resolves, typical enrichment, long analysis).
type ProvidersConfig struct {
	ResolveTimeout  time.Duration `mapstructure:"resolve_timeout"`
	DefaultTimeout  time.Duration `mapstructure:"default_timeout"`
	AnalysisTimeout time.Duration `mapstructure:"analysis_timeout"`

	// Breaker settings apply per provider.
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
	BreakerOpenFor     time.Duration `mapstructure:"breaker_open_for"`

	Endpoints map[string]ProviderEndpoint `mapstructure:"endpoints"`
}

// ProviderEndpoint configures a single upstream provider.
type ProviderEndpoint struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// Endpoint returns the endpoint config for a provider; ok reports whether
// the provider is configured at all.
func (p ProvidersConfig) Endpoint(name string) (ProviderEndpoint, bool) {
	ep, ok := p.Endpoints[strings.ToLower(strings.TrimSpace(name))]
	return ep, ok
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/waterline")

	// Maps nested config: database.max_conns → DATABASE_MAX_CONNS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Pipeline.MaxFanOutDepth < 0 {
		return fmt.Errorf("pipeline.max_fan_out_depth must not be negative")
	}
	if c.Pipeline.MaxBatchEntities < 1 {
		return fmt.Errorf("pipeline.max_batch_entities must be at least 1")
	}
	if c.Providers.DefaultTimeout <= 0 {
		return fmt.Errorf("providers.default_timeout must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "waterline")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "waterline")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.provider_pool_size", 50)

	// Pipeline
	v.SetDefault("pipeline.max_fan_out_depth", 3)
	v.SetDefault("pipeline.max_batch_entities", 100)
	v.SetDefault("pipeline.default_freshness_hours", 72)

	// Providers
	v.SetDefault("providers.resolve_timeout", "15s")
	v.SetDefault("providers.default_timeout", "30s")
	v.SetDefault("providers.analysis_timeout", "300s")
	v.SetDefault("providers.breaker_max_failures", 5)
	v.SetDefault("providers.breaker_open_for", "60s")
}
