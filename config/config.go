package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr    string
	DatabaseDSN   string
	StatsInterval time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	intervalStr := getEnv("STATS_INTERVAL", "1m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, errors.New("invalid STATS_INTERVAL format")
	}

	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		StatsInterval: interval,
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
