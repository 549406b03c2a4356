package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
)

const (
	ProviderSourceConfig   = "config"
	ProviderSourcePostgres = "postgres"

	StatsBackendMemory = "memory"
	StatsBackendRedis  = "redis"
)

// DefaultProviderURLs are used when no provider is configured.
var DefaultProviderURLs = []string{
	"https://ecommerce1.com/api",
	"https://ecommerce2.com/api",
}

// Config holds all application configuration
type Config struct {
	App             AppConfig
	Log             LogConfig
	HTTP            HTTPConfig
	RateLimit       RateLimitConfig
	Catalog         CatalogConfig
	Providers       []provider.Provider
	ProvidersSource string
	Database        DatabaseConfig
	Stats           StatsConfig
	Redis           RedisConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// RateLimitConfig is a per-client token bucket.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
	TTL     time.Duration // idle clients are forgotten after TTL
}

type CatalogConfig struct {
	Concurrency int
}

type DatabaseConfig struct {
	URL string
}

type StatsConfig struct {
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from an optional config file and CATALOG_* environment variables.
// Priority (highest to lowest):
// 1. Environment variables with CATALOG_ prefix (e.g., CATALOG_APP_PORT)
// 2. config.yaml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds the configuration from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		RateLimit: RateLimitConfig{
			Enabled: !v.IsSet("rate_limit.enabled") || v.GetBool("rate_limit.enabled"),
			RPS:     v.GetFloat64("rate_limit.rps"),
			Burst:   v.GetInt("rate_limit.burst"),
			TTL:     v.GetDuration("rate_limit.ttl"),
		},
		Catalog: CatalogConfig{
			Concurrency: v.GetInt("catalog.concurrency"),
		},
		ProvidersSource: strings.ToLower(v.GetString("providers_source")),
		Database: DatabaseConfig{
			URL: v.GetString("database.url"),
		},
		Stats: StatsConfig{
			Backend: strings.ToLower(v.GetString("stats.backend")),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}

	if err := v.UnmarshalKey("providers", &cfg.Providers); err != nil {
		return nil, fmt.Errorf("invalid providers list: %w", err)
	}
	// CATALOG_PROVIDER_URLS=https://a/api,https://b/api is a shortcut for url-only providers.
	for _, u := range strings.Split(v.GetString("provider_urls"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			cfg.Providers = append(cfg.Providers, provider.Provider{BaseURL: u})
		}
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "catalog-aggregator"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
		if cfg.IsProduction() {
			cfg.Log.Format = "json"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.RateLimit.RPS == 0 {
		cfg.RateLimit.RPS = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.RateLimit.TTL == 0 {
		cfg.RateLimit.TTL = 5 * time.Minute
	}
	if cfg.Catalog.Concurrency == 0 {
		cfg.Catalog.Concurrency = 4
	}
	if cfg.ProvidersSource == "" {
		cfg.ProvidersSource = ProviderSourceConfig
	}
	if cfg.ProvidersSource == ProviderSourceConfig && len(cfg.Providers) == 0 {
		for _, u := range DefaultProviderURLs {
			cfg.Providers = append(cfg.Providers, provider.Provider{BaseURL: u})
		}
	}
	if cfg.Stats.Backend == "" {
		cfg.Stats.Backend = StatsBackendMemory
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
}

func (c *Config) validate() error {
	if c.Catalog.Concurrency < 1 {
		return fmt.Errorf("catalog.concurrency must be at least 1, got %d", c.Catalog.Concurrency)
	}
	switch c.ProvidersSource {
	case ProviderSourceConfig:
	case ProviderSourcePostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required when providers_source is postgres")
		}
	default:
		return fmt.Errorf("unknown providers_source %q", c.ProvidersSource)
	}
	switch c.Stats.Backend {
	case StatsBackendMemory, StatsBackendRedis:
	default:
		return fmt.Errorf("unknown stats.backend %q", c.Stats.Backend)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS < 0 || c.RateLimit.Burst < 1) {
		return errors.New("rate_limit.rps must be positive and rate_limit.burst at least 1")
	}
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
