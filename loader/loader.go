package loader

import (
	_ "embed"
	"fmt"
	"optiedge/database"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
)

// InitDatabase applies the schema, upgrades older product tables and seeds
// the default user. It is safe to run on every start.
func InitDatabase(db *sqlx.DB) error {
	log.Info().Msg("Applying database schema...")
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := migrateProducts(db); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}

	if err := seedUsers(db); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	log.Info().Msg("Database initialization complete.")
	return nil
}

// migrateProducts adds updated_at to product tables created without it.
func migrateProducts(db *sqlx.DB) error {
	var columns []struct {
		CID          int     `db:"cid"`
		Name         string  `db:"name"`
		Type         string  `db:"type"`
		NotNull      int     `db:"notnull"`
		DefaultValue *string `db:"dflt_value"`
		PK           int     `db:"pk"`
	}
	if err := db.Select(&columns, "PRAGMA table_info(products)"); err != nil {
		return fmt.Errorf("could not read products columns: %w", err)
	}
	for _, c := range columns {
		if c.Name == "updated_at" {
			return nil
		}
	}

	log.Warn().Msg("products table has no updated_at column, adding it")
	if _, err := db.Exec("ALTER TABLE products ADD COLUMN updated_at TEXT"); err != nil {
		return fmt.Errorf("could not add updated_at: %w", err)
	}
	return nil
}

func seedUsers(db *sqlx.DB) (err error) {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Error().Err(err).Msg("Rolling back user seed")
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	return database.SeedUserInTx(tx, defaultUsername, defaultPassword)
}
