package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SeedUserInTx inserts the user unless the username already exists.
func SeedUserInTx(tx *sqlx.Tx, username, password string) error {
	const q = `INSERT OR IGNORE INTO users (username, password) VALUES (?, ?)`
	_, err := tx.Exec(q, username, password)
	if err != nil {
		return fmt.Errorf("SeedUserInTx (Username: %s) failed: %w", username, err)
	}
	return nil
}

// Authenticate reports whether a user row matches both values exactly.
func Authenticate(db *sqlx.DB, username, password string) (bool, error) {
	var exists int
	const q = `SELECT 1 FROM users WHERE username = ? AND password = ? LIMIT 1`
	err := db.QueryRow(q, username, password).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("Authenticate failed: %w", err)
	}
	return true, nil
}
