package config

import (
	"fmt"
	"os"
	"strings"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all application configuration
type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig controls statement extraction behavior.
type EngineConfig struct {
	// MonthFirstDates prefers MM/DD over DD/MM for ambiguous dates.
	// The default is day-first, matching the dominant source-region
	// convention.
	MonthFirstDates bool
	// Currency is the ISO-4217 code used to present extracted amounts.
	Currency string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	order := getEnv("STATEMENTS_DATE_ORDER", "day-first")
	switch order {
	case "day-first", "month-first":
	default:
		return nil, fmt.Errorf("STATEMENTS_DATE_ORDER must be day-first or month-first, got %q", order)
	}

	return &Config{
		Engine: EngineConfig{
			MonthFirstDates: order == "month-first",
			Currency:        getEnv("STATEMENTS_CURRENCY", "INR"),
		},
		Log: LogConfig{
			Level: getEnv("STATEMENTS_LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}
