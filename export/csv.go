package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"optiedge/model"
	"strconv"
)

// Header is the first row of every product export.
var Header = []string{"ID", "Name", "Price", "Quantity", "Total Value"}

// AllProductsFileName is the suggested name of a full export.
const AllProductsFileName = "inventory_export.csv"

// ProductFileName is the suggested name of a single product export.
func ProductFileName(id int64) string {
	return fmt.Sprintf("product_%d.csv", id)
}

// WriteProducts writes a UTF-8 BOM, the header row and one row per product.
// Amounts use two decimals with no currency symbol or grouping.
func WriteProducts(w io.Writer, products []model.Product) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Price.StringFixed(2),
			strconv.FormatInt(p.Quantity, 10),
			p.TotalValue().StringFixed(2),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write product row to CSV (ID: %d): %w", p.ID, err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
