package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kawaii-hq/kawaii-go/pkg/kawaii"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from flags, environment
// variables and defaults.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	Token              string        `mapstructure:"kawaii_token"`
	BaseURL            string        `mapstructure:"kawaii_base_url"`
	UserAgent          string        `mapstructure:"user_agent"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	DefaultCategory      string        `mapstructure:"default_category"`
	FetchIntervalSeconds int64         `mapstructure:"fetch_interval"`
	FetchInterval        time.Duration `mapstructure:"-"`
	PublishersFile       string        `mapstructure:"publishers_file"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	HistoryTTLSeconds      int64         `mapstructure:"history_ttl_seconds"`
	HistoryCleanupSeconds  int64         `mapstructure:"history_cleanup_interval_seconds"`
	HistoryTTL             time.Duration `mapstructure:"-"`
	HistoryCleanupInterval time.Duration `mapstructure:"-"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"log-level":       "log_level",
	"token":           "kawaii_token",
	"base-url":        "kawaii_base_url",
	"timeout":         "http_timeout_seconds",
	"interval":        "fetch_interval",
	"publishers-file": "publishers_file",
	"storage":         "storage_type",
	"bbolt-path":      "bbolt_path",
}

// Load reads configuration from environment variables and configs/.env.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags is Load with any known flags in fs taking precedence when set.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "kawaii")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("kawaii_token", kawaii.AnonymousToken)
	v.SetDefault("kawaii_base_url", kawaii.DefaultBaseURL)
	v.SetDefault("user_agent", "kawaii-go")
	v.SetDefault("http_timeout_seconds", int64(kawaii.DefaultTimeout/time.Second))
	v.SetDefault("default_category", string(kawaii.CategoryHug))
	v.SetDefault("fetch_interval", 0) // seconds, 0 runs once
	v.SetDefault("publishers_file", "")
	v.SetDefault("storage_type", "none")
	v.SetDefault("bbolt_path", "./data/history.db")
	v.SetDefault("history_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("history_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.FetchIntervalSeconds < 0 {
		return nil, fmt.Errorf("invalid fetch_interval (must be zero or positive seconds)")
	}
	cfg.FetchInterval = time.Duration(cfg.FetchIntervalSeconds) * time.Second

	if _, err := kawaii.ParseCategory(cfg.DefaultCategory); err != nil {
		return nil, fmt.Errorf("invalid default_category: %w", err)
	}

	if cfg.HistoryTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_ttl_seconds (must be positive seconds)")
	}
	if cfg.HistoryCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.HistoryTTL = time.Duration(cfg.HistoryTTLSeconds) * time.Second
	cfg.HistoryCleanupInterval = time.Duration(cfg.HistoryCleanupSeconds) * time.Second

	return &cfg, nil
}
