package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	Environment        string
	LogLevel           string
	LogFormat          string
	MigrationsDir      string
	RunMigrations      bool
	RunSeed            bool
	PageSize           int
	PageWindow         int
	MaxPageSize        int
	RateLimitPerMinute int
	MetricsEnabled     bool
	ShutdownTimeout    time.Duration
	ChartCDNURL        string
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Environment:        getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", false),
		PageSize:           getEnvInt("PAGE_SIZE", 5),
		PageWindow:         getEnvInt("PAGE_WINDOW", 10),
		MaxPageSize:        getEnvInt("MAX_PAGE_SIZE", 100),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ChartCDNURL:        getEnv("CHART_CDN_URL", "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	if c.PageWindow <= 0 {
		return fmt.Errorf("PAGE_WINDOW must be positive")
	}
	if c.MaxPageSize < c.PageSize {
		return fmt.Errorf("MAX_PAGE_SIZE must be at least PAGE_SIZE")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	return nil
}
