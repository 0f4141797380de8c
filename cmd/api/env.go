package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

type config struct {
	Port            string
	StaticDir       string
	OTelLogs        bool
	ShutdownTimeout time.Duration
}

func (c config) Addr() string {
	return ":" + c.Port
}

// loadConfig reads settings from the environment, falling back to defaults
// for anything unset.
func loadConfig() (config, error) {
	cfg := config{
		Port:            getenv("PORT", "3000"),
		StaticDir:       getenv("STATIC_DIR", "dist"),
		ShutdownTimeout: 5 * time.Second,
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if v := os.Getenv("OTEL_LOGS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("invalid OTEL_LOGS_ENABLED %q: %w", v, err)
		}
		cfg.OTelLogs = enabled
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
