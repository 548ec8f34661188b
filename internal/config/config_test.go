package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/netdefense-quiz/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"MODE", "HTTP_ADDR", "BLOB_DRIVER", "BLOB_BASE_PATH", "ENABLE_STATIC", "CORS_ORIGINS_OFFLINE"} {
		t.Setenv(k, "")
	}
	cfg := config.FromEnv()

	assert.Equal(t, config.ModeOffline, cfg.Mode)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "fs", cfg.BlobDriver)
	assert.Equal(t, "./db", cfg.BlobBasePath)
	assert.True(t, cfg.EnableStatic)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:5173"}, cfg.CORSOrigins())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("CORS_ORIGINS_ONLINE", " https://a.example , ,https://b.example")
	t.Setenv("ENABLE_METRICS", "no")
	t.Setenv("BLOB_DRIVER", "sql")

	cfg := config.FromEnv()
	assert.Equal(t, config.ModeOnline, cfg.Mode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, "sql", cfg.BlobDriver)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	require.NoError(t, os.Unsetenv("HTTP_ADDR"))
	t.Setenv("LOG_LEVEL", "warn")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.LogLevel, "existing env wins over the file")
}

func TestLoad_MissingDotEnv(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
