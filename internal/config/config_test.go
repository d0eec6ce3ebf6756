package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LOCALAPPDATA", home)
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://mediapoisk.info", cfg.Scraper.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, 5, cfg.Scraper.Tries)
	assert.Equal(t, 10, cfg.Scraper.MaxWorkers)
	assert.Zero(t, cfg.Scraper.PageSize)
	assert.Equal(t, 72*time.Hour, cfg.Cache.DetailsTTL)
	assert.Equal(t, 12*time.Hour, cfg.Cache.FoldersTTL)
	assert.Equal(t, time.Hour, cfg.Cache.SearchTTL)
	assert.Equal(t, 10, cfg.Storage.HistorySize)
	assert.Equal(t, "mediapoisk.db", filepath.Base(cfg.Storage.Path))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	yaml := `scraper:
  timeout: 10s
  max_workers: 4
  page_size: 50
cache:
  search_ttl: 15m
log:
  level: warn
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("MEDIAPOISK_SCRAPER_MAX_WORKERS", "2")
	t.Setenv("MEDIAPOISK_LOG_DEBUG", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, 2, cfg.Scraper.MaxWorkers, "env wins over the file")
	assert.Equal(t, 50, cfg.Scraper.PageSize)
	assert.Equal(t, 15*time.Minute, cfg.Cache.SearchTTL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 5, cfg.Scraper.Tries, "unset keys keep defaults")
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scraper:\n  tries: 2\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scraper.Tries)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("scraper:\n  max_workers: 0\n"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_workers")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{Scraper: ScraperConfig{BaseURL: "http://x", Timeout: time.Second, Tries: 1, MaxWorkers: 1}}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(*Config){
		"base_url":     func(c *Config) { c.Scraper.BaseURL = "" },
		"timeout":      func(c *Config) { c.Scraper.Timeout = 0 },
		"tries":        func(c *Config) { c.Scraper.Tries = -1 },
		"max_workers":  func(c *Config) { c.Scraper.MaxWorkers = 0 },
		"page_size":    func(c *Config) { c.Scraper.PageSize = -5 },
		"history_size": func(c *Config) { c.Storage.HistorySize = -1 },
	}
	for field, mutate := range tests {
		c := valid()
		mutate(c)
		err := c.Validate()
		require.Error(t, err, field)
		assert.Contains(t, err.Error(), field)
	}
}
