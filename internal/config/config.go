// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every knob the service consumes. The signing secret is
// required: there is deliberately no built-in development fallback.
type Config struct {
	HTTPAddr      string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	WorkerCount   int
}

// Load reads the configuration from the environment (a local .env file is
// honored when present) and fails fast on any missing required value.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		JWTIssuer:     getEnv("JWT_ISSUER", "SmartCity"),
		JWTAudience:   getEnv("JWT_AUDIENCE", "SmartCityUsers"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisAddr, err = requireEnv("REDIS_ADDR"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	redisDBStr := getEnv("REDIS_DB", "0")
	cfg.RedisDB, err = strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB %q: %v", redisDBStr, err)
	}

	workerStr := getEnv("WORKER_COUNT", "1")
	cfg.WorkerCount, err = strconv.Atoi(workerStr)
	if err != nil || cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT %q", workerStr)
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("environment variable %s is not set", key)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
