package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/smartcity")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "supersecret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_AUDIENCE", "")
	t.Setenv("WORKER_COUNT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "SmartCity", cfg.JWTIssuer)
	require.Equal(t, "SmartCityUsers", cfg.JWTAudience)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, "supersecret", cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_ISSUER", "Custom")
	t.Setenv("JWT_AUDIENCE", "CustomUsers")
	t.Setenv("WORKER_COUNT", "4")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "pw", cfg.RedisPassword)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, "Custom", cfg.JWTIssuer)
	require.Equal(t, "CustomUsers", cfg.JWTAudience)
	require.Equal(t, 4, cfg.WorkerCount)
}

func TestLoadFailsFast(t *testing.T) {
	setRequired(t)

	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")

	setRequired(t)
	t.Setenv("REDIS_ADDR", "")
	_, err = Load()
	require.ErrorContains(t, err, "REDIS_ADDR")

	// No embedded development secret: an unset JWT_SECRET refuses to start.
	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	require.ErrorContains(t, err, "JWT_SECRET")

	setRequired(t)
	t.Setenv("REDIS_DB", "notanumber")
	_, err = Load()
	require.ErrorContains(t, err, "REDIS_DB")

	setRequired(t)
	t.Setenv("REDIS_DB", "0")
	t.Setenv("WORKER_COUNT", "-2")
	_, err = Load()
	require.ErrorContains(t, err, "WORKER_COUNT")
}
