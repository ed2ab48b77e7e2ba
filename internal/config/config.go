package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for one generation run.
type Config struct {
	// OutputDir is where the fixture files and the run manifest land.
	OutputDir string `yaml:"output_dir"`
	// Per-stream iteration counts. Each stream emits count × 7 records,
	// one per security per iteration.
	QuoteCount   int `yaml:"quote_count"`
	TradeCount   int `yaml:"trade_count"`
	BookCount    int `yaml:"book_count"`
	InquiryCount int `yaml:"inquiry_count"`
	// Seed for the generator's random draws. 0 means derive a seed from
	// the wall clock; any other value makes the run reproducible.
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the standard configuration: the data directory, 10000
// quote and book-snapshot iterations, 10 trade and inquiry iterations,
// wall-clock seeding.
func Default() *Config {
	return &Config{
		OutputDir:    "data",
		QuoteCount:   10000,
		TradeCount:   10,
		BookCount:    10000,
		InquiryCount: 10,
		Seed:         0,
		LogLevel:     "info",
	}
}

// Load builds the configuration in three layers: defaults, then the
// optional YAML file at path (an empty path skips the file), then
// environment overrides. The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var err error

	cfg.OutputDir = getStr("BONDFEED_OUTPUT_DIR", cfg.OutputDir)

	if cfg.QuoteCount, err = getInt("BONDFEED_QUOTE_COUNT", cfg.QuoteCount); err != nil {
		return fmt.Errorf("invalid BONDFEED_QUOTE_COUNT: %w", err)
	}
	if cfg.TradeCount, err = getInt("BONDFEED_TRADE_COUNT", cfg.TradeCount); err != nil {
		return fmt.Errorf("invalid BONDFEED_TRADE_COUNT: %w", err)
	}
	if cfg.BookCount, err = getInt("BONDFEED_BOOK_COUNT", cfg.BookCount); err != nil {
		return fmt.Errorf("invalid BONDFEED_BOOK_COUNT: %w", err)
	}
	if cfg.InquiryCount, err = getInt("BONDFEED_INQUIRY_COUNT", cfg.InquiryCount); err != nil {
		return fmt.Errorf("invalid BONDFEED_INQUIRY_COUNT: %w", err)
	}
	if cfg.Seed, err = getInt64("BONDFEED_SEED", cfg.Seed); err != nil {
		return fmt.Errorf("invalid BONDFEED_SEED: %w", err)
	}

	cfg.LogLevel = getStr("BONDFEED_LOG_LEVEL", cfg.LogLevel)
	return nil
}

// Validate checks that the configuration is internally consistent. It
// returns an error describing the first problem found.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	counts := []struct {
		name  string
		value int
	}{
		{"quote_count", c.QuoteCount},
		{"trade_count", c.TradeCount},
		{"book_count", c.BookCount},
		{"inquiry_count", c.InquiryCount},
	}
	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", count.name, count.value)
		}
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level: %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func getInt64(key string, defaultVal int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
