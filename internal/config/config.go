// Package config loads and validates runtime configuration from the
// environment. Fail-fast: missing required variables abort startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Fetch timeouts are clamped to this window to respect third-party boards
// without hanging an ingestion run.
const (
	MinFetchTimeout = 5 * time.Second
	MaxFetchTimeout = 10 * time.Second
)

// Config holds all runtime configuration for the aggregation backend.
type Config struct {
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// FetchTimeout bounds each outbound request, clamped to 5-10s.
	FetchTimeout time.Duration
	// SourceDelay is the default pause between requests to one source when
	// the source config does not override it.
	SourceDelay time.Duration
	// KeywordDelay is the pause between keyword searches within a source.
	KeywordDelay time.Duration
	// ParallelSources runs one worker per source instead of the default
	// sequential sweep. Per-source delays are preserved either way.
	ParallelSources bool

	// SourcesFile optionally overrides the built-in source registry.
	SourcesFile string

	// IngestKeywords is the default keyword set for scheduled runs.
	IngestKeywords []string
	// MaxPerSource caps listings taken from one source per run.
	MaxPerSource int

	// StatsCacheTTL bounds memoized aggregate statistics.
	StatsCacheTTL time.Duration
	// PurgeAfterDays is the retention window for inactive external records.
	PurgeAfterDays int

	LogLevel string
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		RedisAddr:      "localhost:6379",
		FetchTimeout:   8 * time.Second,
		SourceDelay:    2 * time.Second,
		KeywordDelay:   3 * time.Second,
		IngestKeywords: []string{"software developer", "accountant", "sales", "administrator"},
		MaxPerSource:   50,
		StatsCacheTTL:  45 * time.Minute,
		PurgeAfterDays: 60,
		LogLevel:       "info",
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}
	if v := os.Getenv("SOURCE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SOURCE_DELAY: %w", err)
		}
		cfg.SourceDelay = d
	}
	if v := os.Getenv("KEYWORD_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KEYWORD_DELAY: %w", err)
		}
		cfg.KeywordDelay = d
	}
	if v := os.Getenv("PARALLEL_SOURCES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PARALLEL_SOURCES: %w", err)
		}
		cfg.ParallelSources = b
	}

	cfg.SourcesFile = os.Getenv("SOURCES_FILE")

	if v := os.Getenv("INGEST_KEYWORDS"); v != "" {
		parts := strings.Split(v, ",")
		keywords := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				keywords = append(keywords, p)
			}
		}
		if len(keywords) > 0 {
			cfg.IngestKeywords = keywords
		}
	}
	if v := os.Getenv("MAX_PER_SOURCE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_PER_SOURCE: %w", err)
		}
		cfg.MaxPerSource = n
	}

	if v := os.Getenv("STATS_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STATS_CACHE_TTL: %w", err)
		}
		cfg.StatsCacheTTL = d
	}
	if v := os.Getenv("PURGE_AFTER_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PURGE_AFTER_DAYS: %w", err)
		}
		cfg.PurgeAfterDays = n
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.clampTimeouts()

	return cfg, nil
}

func (c *Config) clampTimeouts() {
	if c.FetchTimeout < MinFetchTimeout {
		c.FetchTimeout = MinFetchTimeout
	}
	if c.FetchTimeout > MaxFetchTimeout {
		c.FetchTimeout = MaxFetchTimeout
	}
}

// Validate checks value ranges after loading.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database URL is empty")
	}
	if c.MaxPerSource < 1 || c.MaxPerSource > 500 {
		return fmt.Errorf("max per source must be between 1 and 500, got %d", c.MaxPerSource)
	}
	if c.SourceDelay < 0 || c.KeywordDelay < 0 {
		return fmt.Errorf("delays must be non-negative")
	}
	if c.PurgeAfterDays < 1 {
		return fmt.Errorf("purge retention must be at least one day, got %d", c.PurgeAfterDays)
	}
	if c.StatsCacheTTL < 30*time.Minute || c.StatsCacheTTL > time.Hour {
		return fmt.Errorf("stats cache TTL must be between 30m and 1h, got %v", c.StatsCacheTTL)
	}
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}
