package config

// Configuration loading for staffdir

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qyinm/staffdir/fetcher"
)

// Config is the runtime configuration of the directory viewer.
type Config struct {
	PrimaryURL  string        `yaml:"primary_url"`
	Fallback    string        `yaml:"fallback"`     // file path or http(s) URL
	AssetDir    string        `yaml:"asset_dir"`    // where bare image names live
	NarrowWidth int           `yaml:"narrow_width"` // columns at or below which cards are used
	Timeout     time.Duration `yaml:"timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	LogFile     string        `yaml:"log_file,omitempty"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PrimaryURL:  "http://localhost:3000/employees",
		Fallback:    "db/db.json",
		AssetDir:    "assets/images",
		NarrowWidth: 100,
		Timeout:     10 * time.Second,
		CacheTTL:    5 * time.Minute,
		LogLevel:    "info",
	}
}

// Load reads path over the defaults, then applies STAFFDIR_* environment
// overrides. An empty path skips the file; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FetcherOptions maps the data source settings onto a resolver.
func (c Config) FetcherOptions() fetcher.Options {
	return fetcher.Options{
		PrimaryURL: c.PrimaryURL,
		Fallback:   c.Fallback,
		Timeout:    c.Timeout,
		CacheTTL:   c.CacheTTL,
	}
}

// Validate reports settings the program cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.PrimaryURL) == "" {
		return fmt.Errorf("primary_url is required")
	}
	if strings.TrimSpace(c.Fallback) == "" {
		return fmt.Errorf("fallback is required")
	}
	if c.NarrowWidth <= 0 {
		return fmt.Errorf("narrow_width must be positive, got %d", c.NarrowWidth)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.PrimaryURL = ParseString(os.Getenv("STAFFDIR_PRIMARY_URL"), cfg.PrimaryURL)
	cfg.Fallback = ParseString(os.Getenv("STAFFDIR_FALLBACK"), cfg.Fallback)
	cfg.AssetDir = ParseString(os.Getenv("STAFFDIR_ASSET_DIR"), cfg.AssetDir)
	cfg.NarrowWidth = ParseInt(os.Getenv("STAFFDIR_NARROW_WIDTH"), cfg.NarrowWidth)
	cfg.Timeout = ParseDuration(os.Getenv("STAFFDIR_TIMEOUT"), cfg.Timeout)
	cfg.CacheTTL = ParseDuration(os.Getenv("STAFFDIR_CACHE_TTL"), cfg.CacheTTL)
	cfg.LogFile = ParseString(os.Getenv("STAFFDIR_LOG_FILE"), cfg.LogFile)
	cfg.LogLevel = ParseString(os.Getenv("STAFFDIR_LOG_LEVEL"), cfg.LogLevel)
}
