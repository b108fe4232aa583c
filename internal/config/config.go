package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/antonkarev/healthhub/internal/logger"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	Storage        StorageConfig
	Logger         LoggerConfig
}

type StorageConfig struct {
	Backend   string // "sqlite", "redis" or "memory"
	Path      string // sqlite database file
	RedisHost string
	RedisPort string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func parseTimeout(value string) (time.Duration, error) {
	if value == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid API_TIMEOUT %q: %w", value, err)
	}
	return d, nil
}

func Load() (*Config, error) {
	timeout, err := parseTimeout(os.Getenv("API_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", "sqlite"))
	switch backend {
	case "sqlite", "redis", "memory":
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}

	return &Config{
		APIBaseURL:     strings.TrimRight(getEnvOrDefault("API_BASE_URL", "http://localhost:8000"), "/"),
		RequestTimeout: timeout,
		Storage: StorageConfig{
			Backend:   backend,
			Path:      getEnvOrDefault("STORAGE_PATH", "healthhub.db"),
			RedisHost: getEnvOrDefault("REDIS_HOST", "localhost"),
			RedisPort: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/healthhub.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
