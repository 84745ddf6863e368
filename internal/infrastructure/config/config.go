package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DatabasePath string

	// Formula parameters; empty means built-in defaults
	ReadinessConfigPath string

	// Periodic batch recompute of every learner's snapshot; zero disables it
	RecomputeInterval time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:       mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:     mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatabasePath:        getenvDefault("DATABASE_PATH", "hamready.db"),
		ReadinessConfigPath: os.Getenv("READINESS_CONFIG_PATH"),
		RecomputeInterval:   getDurationDefault("RECOMPUTE_INTERVAL", 0),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
