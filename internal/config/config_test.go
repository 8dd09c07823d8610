package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DRIVER", "REDIS_ADDR", "EMPTY_PAGE_NOT_FOUND", "CORS_ORIGINS", "CATEGORY_CACHE_TTL"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Empty(t, cfg.Redis.Addr)
	assert.True(t, cfg.EmptyPageNotFound)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Minute, cfg.CategoryCacheTTL)
	assert.Equal(t, "trivia", cfg.Postgres.DBName)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("EMPTY_PAGE_NOT_FOUND", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CATEGORY_CACHE_TTL", "30s")
	t.Setenv("REDIS_DB", "3")

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.False(t, cfg.EmptyPageNotFound)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.CategoryCacheTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CATEGORY_CACHE_TTL", "soon")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("EMPTY_PAGE_NOT_FOUND", "maybe")

	cfg := FromEnv()
	assert.Equal(t, 5*time.Minute, cfg.CategoryCacheTTL)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.EmptyPageNotFound)
}
