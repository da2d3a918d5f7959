/*
Package config holds runtime settings for the amortize command.

SOURCES (later wins):
  1. Defaults
  2. Environment, including a .env file loaded by the command
  3. Command-line flags, applied by cmd/amortize

ENVIRONMENT:
  AMORTIZE_FORMAT        table | csv | json          (default: table)
  AMORTIZE_SUMMARY       print totals after the table (default: false)
  AMORTIZE_MAX_PERIODS   hard cap on payment records, 0 = none (default: 0)
  AMORTIZE_LOG_LEVEL     debug | info | warn | error  (default: warn)
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/warp/amortization-engine/report"
)

// Config is the resolved configuration.
type Config struct {
	Format     string
	Summary    bool
	MaxPeriods int
	LogLevel   string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Format:     getEnv("AMORTIZE_FORMAT", string(report.FormatTable)),
		Summary:    getEnvBool("AMORTIZE_SUMMARY", false),
		MaxPeriods: getEnvInt("AMORTIZE_MAX_PERIODS", 0),
		LogLevel:   getEnv("AMORTIZE_LOG_LEVEL", "warn"),
	}
}

// Validate returns every problem with the configuration in one error.
func (c *Config) Validate() error {
	var problems []string

	if _, err := report.ParseFormat(c.Format); err != nil {
		problems = append(problems, err.Error())
	}
	if c.MaxPeriods < 0 {
		problems = append(problems, fmt.Sprintf("invalid max periods %d: must be zero or positive", c.MaxPeriods))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() report.Format {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.FormatTable
	}
	return f
}

// Level returns the parsed log level, warn if unparsable.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
