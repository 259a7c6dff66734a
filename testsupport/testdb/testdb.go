package testdb

import (
	"context"
	"database/sql"
	"testing"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/newmeca/meca-server/pkg/database"
)

// InitTestDb opens an in-memory database with the schema applied. It is
// closed when tb finishes.
func InitTestDb(tb testing.TB) *sql.DB {
	tb.Helper()

	db, err := database.New(context.Background(),
		database.WithDriver("sqlite3"),
		database.WithDataSource(":memory:"),
		database.WithRetry(1, 0),
	)
	if err != nil {
		tb.Fatalf("initTestDb: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("initTestDb migrate: %v", err)
	}
	return db
}
