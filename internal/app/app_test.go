package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/newmeca/meca-server/internal/config"
)

func TestOpenDatabase(t *testing.T) {
	t.Run("migrates when enabled", func(t *testing.T) {
		cfg := &config.Config{DBDriver: "sqlite3", DBPath: ":memory:", DBAutoMigrate: true}

		db, err := OpenDatabase(context.Background(), cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		defer db.Close()

		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM points_configurations`).Scan(&n))
		assert.Zero(t, n)
	})

	t.Run("leaves schema alone when disabled", func(t *testing.T) {
		cfg := &config.Config{DBDriver: "sqlite3", DBPath: filepath.Join(t.TempDir(), "meca.db")}

		db, err := OpenDatabase(context.Background(), cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec(`SELECT 1 FROM seasons`)
		assert.ErrorContains(t, err, "no such table")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{DBDriver: "nope", DBPath: ":memory:"}

		_, err := OpenDatabase(context.Background(), cfg, zaptest.NewLogger(t))

		assert.ErrorContains(t, err, "database init failed")
	})
}

func TestNewAppFailsWithoutRedis(t *testing.T) {
	cfg := config.LoadFromEnv()
	cfg.DBPath = ":memory:"
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t))

	assert.ErrorContains(t, err, "cache init failed")
}
