// Package dbtest opens initialised in-memory stores for tests.
package dbtest

import (
	"optiedge/database"
	"optiedge/loader"
	"testing"

	"github.com/jmoiron/sqlx"
)

// Open returns a fresh in-memory store with the schema applied and the
// default user seeded. It is closed when the test ends.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := loader.InitDatabase(db); err != nil {
		t.Fatalf("init: %v", err)
	}
	return db
}
