// Package config loads server configuration from an optional YAML file
// with environment-variable overrides. Every setting has a usable default;
// only the corpus path is required.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Cache   CacheConfig   `yaml:"cache"`
	Search  SearchConfig  `yaml:"search"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig locates the corpus produced by the external parsing batch.
type CorpusConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig bounds the query-result caches.
type CacheConfig struct {
	Capacity int           `yaml:"capacity"`
	TTL      time.Duration `yaml:"ttl"`
}

// SearchConfig holds search defaults applied by the protocol adapter.
type SearchConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
}

// MetricsConfig controls the optional Prometheus scrape listener. An empty
// address disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig controls the stderr structured logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name to a slog level, defaulting
// to info for unrecognized values.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Capacity: 256,
			TTL:      5 * time.Minute,
		},
		Search: SearchConfig{
			DefaultLimit: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path (skipped when empty), then applies
// NGSS_* environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("NGSS_CORPUS_PATH"); v != "" {
		c.Corpus.Path = v
	}
	if v := os.Getenv("NGSS_CACHE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NGSS_CACHE_CAPACITY: %w", err)
		}
		c.Cache.Capacity = n
	}
	if v := os.Getenv("NGSS_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NGSS_CACHE_TTL: %w", err)
		}
		c.Cache.TTL = d
	}
	if v := os.Getenv("NGSS_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("NGSS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus path is required (set corpus.path or NGSS_CORPUS_PATH)")
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache capacity must be positive, got %d", c.Cache.Capacity)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}
