package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_ROOT", "/var/lib/books")
	t.Setenv("MAX_UPLOAD_SIZE", "2MB")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/books", cfg.Storage.Root)
	assert.Equal(t, int64(2_000_000), cfg.Storage.MaxUploadSize)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 60, cfg.Redis.TTLSec)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_ROOT", "")
	t.Setenv("MAX_UPLOAD_SIZE", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "/tmp", cfg.Storage.Root)
	assert.Equal(t, int64(10_000_000), cfg.Storage.MaxUploadSize)
	assert.Equal(t, "8080", cfg.Port)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvBytes(t *testing.T) {
	key := "TEST_BYTES_VAR"

	t.Setenv(key, "1 KiB")
	assert.Equal(t, int64(1024), getEnvBytes(key, "1MB"))

	t.Setenv(key, "garbage")
	assert.Equal(t, int64(1_000_000), getEnvBytes(key, "1MB"))

	t.Setenv(key, "")
	assert.Equal(t, int64(5_000_000), getEnvBytes(key, "5MB"))
}
