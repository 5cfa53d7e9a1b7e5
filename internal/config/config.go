package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all server configuration loaded from environment variables.
type Config struct {
	ListenAddr         string        // HTTP listen address
	LogDir             string        // Directory for the rotating log file; empty logs to stdout only
	LogLevel           string        // Minimum log level
	SeedData           bool          // Load the sample users and places on start-up
	CORSAllowedOrigins []string      // Origins accepted by the CORS middleware
	MaxBodyBytes       int64         // Maximum accepted request body size
	ShutdownTimeout    time.Duration // Grace period for in-flight requests on shutdown
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() *Config {
	return &Config{
		ListenAddr:         envOrDefault("LISTEN_ADDR", ":3000"),
		LogDir:             envOrDefault("LOG_DIR", ""),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		SeedData:           envOrDefaultBool("SEED_DATA", true),
		CORSAllowedOrigins: envOrDefaultList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxBodyBytes:       envOrDefaultInt64("MAX_BODY_BYTES", 1<<20),
		ShutdownTimeout:    envOrDefaultDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envOrDefaultBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envOrDefaultList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
