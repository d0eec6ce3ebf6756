// Package config loads settings from defaults, an optional config.yaml and
// MEDIAPOISK_ environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "MEDIAPOISK"

type Config struct {
	Scraper ScraperConfig `mapstructure:"scraper"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type ScraperConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Tries      int           `mapstructure:"tries"`
	RetryWait  time.Duration `mapstructure:"retry_wait"`
	MaxWorkers int           `mapstructure:"max_workers"`
	PageSize   int           `mapstructure:"page_size"` // 0 keeps the site default
}

type CacheConfig struct {
	DetailsTTL time.Duration `mapstructure:"details_ttl"`
	FoldersTTL time.Duration `mapstructure:"folders_ttl"`
	SearchTTL  time.Duration `mapstructure:"search_ttl"`
}

type StorageConfig struct {
	Path        string `mapstructure:"path"`
	HistorySize int    `mapstructure:"history_size"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	Debug      bool   `mapstructure:"debug"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Load reads the configuration. configPath may name a file or a directory
// holding config.yaml; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" && filepath.Ext(configPath) != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if configPath != "" {
			v.AddConfigPath(configPath)
		}
		v.AddConfigPath(".")
		v.AddConfigPath(DataDir())
	}

	// MEDIAPOISK_SCRAPER_TIMEOUT=10s overrides scraper.timeout
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scraper.base_url", "http://mediapoisk.info")
	v.SetDefault("scraper.timeout", 30*time.Second)
	v.SetDefault("scraper.tries", 5)
	v.SetDefault("scraper.retry_wait", 500*time.Millisecond)
	v.SetDefault("scraper.max_workers", 10)
	v.SetDefault("scraper.page_size", 0)

	v.SetDefault("cache.details_ttl", 72*time.Hour)
	v.SetDefault("cache.folders_ttl", 12*time.Hour)
	v.SetDefault("cache.search_ttl", time.Hour)

	v.SetDefault("storage.path", filepath.Join(DataDir(), "mediapoisk.db"))
	v.SetDefault("storage.history_size", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Validate rejects settings the scraper cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Scraper.BaseURL == "":
		return errors.New("scraper.base_url must not be empty")
	case c.Scraper.Timeout <= 0:
		return errors.Errorf("scraper.timeout must be positive, got %s", c.Scraper.Timeout)
	case c.Scraper.Tries <= 0:
		return errors.Errorf("scraper.tries must be positive, got %d", c.Scraper.Tries)
	case c.Scraper.MaxWorkers <= 0:
		return errors.Errorf("scraper.max_workers must be positive, got %d", c.Scraper.MaxWorkers)
	case c.Scraper.PageSize < 0:
		return errors.Errorf("scraper.page_size must not be negative, got %d", c.Scraper.PageSize)
	case c.Storage.HistorySize < 0:
		return errors.Errorf("storage.history_size must not be negative, got %d", c.Storage.HistorySize)
	}
	return nil
}

// DataDir is where the database and the optional config.yaml live:
// %LOCALAPPDATA%\MediaPoisk on Windows, ~/.local/mediapoisk elsewhere.
func DataDir() string {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "MediaPoisk")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mediapoisk"
	}
	return filepath.Join(home, ".local", "mediapoisk")
}
