package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("file with env override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
DB_HOST: db.internal
DB_PORT: "5432"
JWT_SECRET: from-file
TARGET_LANG: fr
TRANSLATION_BATCH_SIZE: 5
`), 0o600))
		t.Setenv("JWT_SECRET", "from-env")
		t.Setenv("REDIS_DB", "2")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, "from-env", cfg.JWTSecret)
		assert.Equal(t, "fr", cfg.TargetLang)
		assert.Equal(t, 5, cfg.TranslationBatchSize)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, "8080", cfg.AppPort)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.TargetLang)
		assert.Equal(t, 20, cfg.TranslationBatchSize)
		assert.Equal(t, 60, cfg.CacheTTLMinutes)
		assert.Equal(t, "disable", cfg.DBSSLMode)
	})

	t.Run("bad integer", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_MAX", "lots")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "RATE_LIMIT_MAX")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("DB_HOST: [unclosed"), 0o600))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
