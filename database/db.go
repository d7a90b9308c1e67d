package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
)

// DriverName is the go-sqlite3 driver with the casefold() SQL function added.
const DriverName = "sqlite3_optiedge"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("casefold", Fold, true)
		},
	})
}

// Fold applies full Unicode case folding, so "É" and "é" compare equal.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Open opens the SQLite store at path. One connection is kept for the whole
// process so every read and write runs in order.
func Open(path string) (*sqlx.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}
