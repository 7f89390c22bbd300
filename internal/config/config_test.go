package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STATIC_DIR", "INDEX_FILE", "CORS_ALLOWED_ORIGIN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		clearEnv(t)

		cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultStaticDir, cfg.StaticDir)
		assert.Equal(t, DefaultIndexFile, cfg.IndexFile)
		assert.Equal(t, DefaultAllowedOrigin, cfg.AllowedOrigin)
		assert.Equal(t, ":8080", cfg.Addr())
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("STATIC_DIR", "/srv/www")
		t.Setenv("CORS_ALLOWED_ORIGIN", "https://example.com")

		cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "/srv/www", cfg.StaticDir)
		assert.Equal(t, DefaultIndexFile, cfg.IndexFile)
		assert.Equal(t, "https://example.com", cfg.AllowedOrigin)
		assert.Equal(t, ":9090", cfg.Addr())
	})

	t.Run("values from env file", func(t *testing.T) {
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=7070\nINDEX_FILE=app.html\n"), 0o644))

		cfg := Load(envFile)

		assert.Equal(t, "7070", cfg.Port)
		assert.Equal(t, "app.html", cfg.IndexFile)
		assert.Equal(t, DefaultStaticDir, cfg.StaticDir)
	})

	t.Run("process environment wins over env file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "6060")
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=7070\n"), 0o644))

		cfg := Load(envFile)

		assert.Equal(t, "6060", cfg.Port)
	})
}

func TestGetEnv(t *testing.T) {
	t.Run("returns fallback for empty value", func(t *testing.T) {
		t.Setenv("NETVIZ_TEST_KEY", "")

		assert.Equal(t, "fallback", GetEnv("NETVIZ_TEST_KEY", "fallback"))
	})

	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("NETVIZ_TEST_KEY", "value")

		assert.Equal(t, "value", GetEnv("NETVIZ_TEST_KEY", "fallback"))
	})
}
