package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("VERIFIER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, VerifierRoomPin, cfg.Verifier)
	assert.Equal(t, 5*time.Second, cfg.JoinVerifyTimeout)
	assert.True(t, cfg.SeedDemoRooms)
	assert.False(t, cfg.IsProd())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("VERIFIER", "sql")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "rooms")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_USER")
}

func TestLoad_UnknownVerifier(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("VERIFIER", "ldap")
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "ON")
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "250ms")
	assert.True(t, envBool("X_BOOL", false))
	assert.Equal(t, 7, envInt("X_INT", 7))
	assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", time.Second))
	assert.Equal(t, "d", envStr("X_UNSET_FOR_TEST", "d"))
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "10s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	c := LoadRateLimitConfig()
	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, 50*time.Second, c.TTL)
}

func TestLoadCacheConfig_Methods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head ,")
	c := LoadCacheConfig()
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, c.Methods)
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("DB_USER", "rooms")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "rooms")
	t.Setenv("DB_PORT", "")
	_, err := LoadDatabase()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")

	t.Setenv("DB_HOST", "db")
	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, 10, cfg.BcryptCost)
}
