package database

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"optiedge/model"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const selectProducts = `
	SELECT id, name, price, quantity, COALESCE(updated_at, '') AS updated_at
	FROM products`

// GetAllProducts returns every product, newest first.
func GetAllProducts(db *sqlx.DB) ([]model.Product, error) {
	products := []model.Product{}
	err := db.Select(&products, selectProducts+" ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetProductByID returns nil when no row has the id.
func GetProductByID(db *sqlx.DB, id int64) (*model.Product, error) {
	var p model.Product
	err := db.Get(&p, selectProducts+" WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &p, nil
}

// SearchProducts matches query as a case-folded substring of the name or of
// the id text. The query is matched literally, with no wildcards.
func SearchProducts(db *sqlx.DB, query string) ([]model.Product, error) {
	folded := Fold(query)
	const where = ` WHERE instr(casefold(name), ?) > 0 OR instr(CAST(id AS TEXT), ?) > 0 ORDER BY id DESC`
	products := []model.Product{}
	err := db.Select(&products, selectProducts+where, folded, folded)
	if err != nil {
		return nil, fmt.Errorf("failed to search products (query: %q): %w", query, err)
	}
	return products, nil
}

// InsertProduct stores p and returns the id assigned by the store.
func InsertProduct(db *sqlx.DB, p model.Product) (int64, error) {
	const q = `INSERT INTO products (name, price, quantity, updated_at) VALUES (?, ?, ?, ?)`
	res, err := db.Exec(q, p.Name, p.Price.InexactFloat64(), p.Quantity, p.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("InsertProduct (Name: %s) failed: %w", p.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("InsertProduct (Name: %s) last insert id: %w", p.Name, err)
	}
	return id, nil
}

// UpdateProduct overwrites the row with p.ID and reports the rows affected.
func UpdateProduct(db *sqlx.DB, p model.Product) (int64, error) {
	const q = `UPDATE products SET name = ?, price = ?, quantity = ?, updated_at = ? WHERE id = ?`
	res, err := db.Exec(q, p.Name, p.Price.InexactFloat64(), p.Quantity, p.UpdatedAt, p.ID)
	if err != nil {
		return 0, fmt.Errorf("UpdateProduct (ID: %d) failed: %w", p.ID, err)
	}
	return res.RowsAffected()
}

func DeleteProduct(db *sqlx.DB, id int64) (int64, error) {
	const q = `DELETE FROM products WHERE id = ?`
	res, err := db.Exec(q, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product with id %d: %w", id, err)
	}
	return res.RowsAffected()
}

// ErrQuantityOverflow is returned when the quantity sum exceeds math.MaxInt64.
var ErrQuantityOverflow = errors.New("total quantity overflows int64")

// GetProductTotals sums quantity and price × quantity over every row.
func GetProductTotals(db *sqlx.DB) (model.Totals, error) {
	var rows []struct {
		Price    decimal.Decimal `db:"price"`
		Quantity int64           `db:"quantity"`
	}
	if err := db.Select(&rows, "SELECT price, quantity FROM products"); err != nil {
		return model.Totals{}, fmt.Errorf("failed to get product totals: %w", err)
	}

	totals := model.Totals{Value: decimal.Zero}
	for _, r := range rows {
		if r.Quantity > math.MaxInt64-totals.Quantity {
			return model.Totals{}, ErrQuantityOverflow
		}
		totals.Quantity += r.Quantity
		totals.Value = totals.Value.Add(r.Price.Mul(decimal.NewFromInt(r.Quantity)))
	}
	return totals, nil
}

func CountProducts(db *sqlx.DB) (int, error) {
	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
