// Package config provides configuration management for the news aggregator.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingFeedList       = errors.New("feed_list.url is required")
	ErrInvalidFeedWorkers    = errors.New("pools.feed_workers must be at least 1")
	ErrInvalidArticleWorkers = errors.New("pools.article_workers must be at least 1")
	ErrInvalidTimeout        = errors.New("fetch.timeout_sec must be at least 1")
	ErrInvalidBufferSize     = errors.New("fetch.buffer_size_kb must be at least 1")
	ErrInvalidMaxMatches     = errors.New("query.max_matches must be at least 1")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Default pool sizes. Feed parsing is a wide but shallow fan-out;
// article parsing is the bulk of the work, so the article pool is
// much larger.
const (
	DefaultFeedWorkers    = 8
	DefaultArticleWorkers = 64
)

// Remaining defaults applied by ApplyDefaults.
const (
	DefaultFeedListURL  = "small-feed.xml"
	DefaultTimeoutSec   = 30
	DefaultBufferSizeKb = 1024
	DefaultMaxMatches   = 15
	DefaultUserAgent    = "newsagg/1.0"
)

// Config represents the complete aggregator configuration.
type Config struct {
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AggregatorConfig contains crawl-specific settings.
type AggregatorConfig struct {
	FeedList FeedListConfig `yaml:"feed_list"`
	Pools    PoolsConfig    `yaml:"pools"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Query    QueryConfig    `yaml:"query"`
}

// FeedListConfig locates the feed list to crawl. The URL may be an
// http(s) location or a local file path.
type FeedListConfig struct {
	URL string `yaml:"url"`
}

// PoolsConfig sizes the two worker pools.
type PoolsConfig struct {
	FeedWorkers    int `yaml:"feed_workers"`
	ArticleWorkers int `yaml:"article_workers"`
}

// FetchConfig controls document fetching.
type FetchConfig struct {
	UserAgent    string `yaml:"user_agent"`
	TimeoutSec   int    `yaml:"timeout_sec"`
	BufferSizeKb int    `yaml:"buffer_size_kb"`
}

// QueryConfig controls the interactive query loop.
type QueryConfig struct {
	MaxMatches int `yaml:"max_matches"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from a YAML file, applies defaults,
// and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Aggregator.FeedList.URL == "" {
		c.Aggregator.FeedList.URL = DefaultFeedListURL
	}

	if c.Aggregator.Pools.FeedWorkers == 0 {
		c.Aggregator.Pools.FeedWorkers = DefaultFeedWorkers
	}

	if c.Aggregator.Pools.ArticleWorkers == 0 {
		c.Aggregator.Pools.ArticleWorkers = DefaultArticleWorkers
	}

	if c.Aggregator.Fetch.TimeoutSec == 0 {
		c.Aggregator.Fetch.TimeoutSec = DefaultTimeoutSec
	}

	if c.Aggregator.Fetch.BufferSizeKb == 0 {
		c.Aggregator.Fetch.BufferSizeKb = DefaultBufferSizeKb
	}

	if c.Aggregator.Fetch.UserAgent == "" {
		c.Aggregator.Fetch.UserAgent = DefaultUserAgent
	}

	if c.Aggregator.Query.MaxMatches == 0 {
		c.Aggregator.Query.MaxMatches = DefaultMaxMatches
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Aggregator.FeedList.URL == "" {
		return ErrMissingFeedList
	}

	if c.Aggregator.Pools.FeedWorkers < 1 {
		return ErrInvalidFeedWorkers
	}

	if c.Aggregator.Pools.ArticleWorkers < 1 {
		return ErrInvalidArticleWorkers
	}

	if c.Aggregator.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Aggregator.Fetch.BufferSizeKb < 1 {
		return ErrInvalidBufferSize
	}

	if c.Aggregator.Query.MaxMatches < 1 {
		return ErrInvalidMaxMatches
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a short human-readable summary of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("feed list %q, %d feed workers, %d article workers",
		c.Aggregator.FeedList.URL,
		c.Aggregator.Pools.FeedWorkers,
		c.Aggregator.Pools.ArticleWorkers)
}
