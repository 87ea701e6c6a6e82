package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Storage  StorageConfig
	Upstream UpstreamConfig
	Catalog  CatalogConfig
	Run      RunConfig
	Server   ServerConfig
	Notify   NotifyConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"dev" validate:"oneof=dev staging prod test"`
	Version     string `envconfig:"APP_VERSION" default:"dev"`
}

// LogConfig holds logger settings. An empty Dir logs to stdout only.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	Format string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	Dir    string `envconfig:"LOG_DIR" default:""`
}

// StorageConfig holds on-disk locations.
type StorageConfig struct {
	DataDir        string `envconfig:"DATA_DIR" default:"." validate:"required"`
	AssetsDir      string `envconfig:"ASSETS_DIR" default:"assets"`
	DownloadImages bool   `envconfig:"DOWNLOAD_IMAGES" default:"true"`
}

// UpstreamConfig holds HTTP client settings for the banner APIs.
type UpstreamConfig struct {
	Timeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s" validate:"gt=0"`
	UserAgent   string        `envconfig:"USER_AGENT" default:"Hoyoverse-Data/1.0 (+https://github.com/FuriaPaladins/Hoyoverse-Data)" validate:"required"`
	Concurrency int           `envconfig:"FETCH_CONCURRENCY" default:"8" validate:"min=1,max=64"`
}

// CatalogConfig holds item catalog settings.
type CatalogConfig struct {
	BaseURL   string        `envconfig:"CATALOG_BASE_URL" default:"https://api.hakush.in" validate:"required,url"`
	CacheTTL  time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"6h" validate:"gte=0"`
	CacheSize int           `envconfig:"CATALOG_CACHE_SIZE" default:"16" validate:"min=1"`
}

// RunConfig selects what runs and how often. A zero PollInterval runs once.
type RunConfig struct {
	Games        []string      `envconfig:"GAMES" default:"genshin,hsr,zzz" validate:"required,min=1,dive,game"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"0s" validate:"gte=0"`
}

// ServerConfig holds the status server settings. An empty Addr disables it.
type ServerConfig struct {
	Addr            string        `envconfig:"METRICS_ADDR" default:"" validate:"omitempty,hostname_port"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

// NotifyConfig holds Discord notification settings. Empty disables notifications.
type NotifyConfig struct {
	DiscordWebhookURL string `envconfig:"DISCORD_WEBHOOK_URL" default:"" validate:"omitempty,url"`
}

// Load reads configuration from environment variables, loading .env first
// when present, and validates the result.
func Load() (*Config, error) {
	// Real environment variables win over .env
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadConfig, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Games returns the configured games in configuration order.
func (c *Config) Games() ([]domain.Game, error) {
	return domain.ParseGames(c.Run.Games)
}

// Polling reports whether the process should keep running on an interval.
func (c *Config) Polling() bool {
	return c.Run.PollInterval > 0
}

// ServerEnabled reports whether the status server should be started.
func (c *Config) ServerEnabled() bool {
	return c.Server.Addr != ""
}

// NotifyEnabled reports whether Discord notifications are configured.
func (c *Config) NotifyEnabled() bool {
	return c.Notify.DiscordWebhookURL != ""
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == EnvProduction
}
