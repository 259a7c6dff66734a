package database

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("memory database uses one connection", func(t *testing.T) {
		db, err := New(context.Background(), WithMaxOpenConns(10))
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	})

	t.Run("empty driver", func(t *testing.T) {
		_, err := New(context.Background(), WithDriver(""))

		assert.ErrorContains(t, err, "driver cannot be empty")
	})

	t.Run("empty data source", func(t *testing.T) {
		_, err := New(context.Background(), WithDataSource(""))

		assert.ErrorContains(t, err, "data source cannot be empty")
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		_, err := New(context.Background(), WithDriver("unregistered"), WithRetry(2, time.Millisecond))

		assert.ErrorContains(t, err, "after 2 attempts")
	})

	t.Run("canceled while retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(ctx, WithDriver("unregistered"), WithRetry(3, time.Hour))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file:test?mode=memory&cache=shared"))
	assert.False(t, isMemoryDSN("./data/database.db"))
}

func TestMigrate(t *testing.T) {
	db, err := New(context.Background())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "second run is a no-op")

	for _, table := range []string{"seasons", "profiles", "competition_classes", "events", "championship_archives", "competition_results", "points_configurations"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, table)
	}
}
