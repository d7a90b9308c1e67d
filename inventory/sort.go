package inventory

import (
	"optiedge/model"
	"optiedge/render"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Column names a sortable product table column.
type Column string

const (
	ColumnID         Column = "id"
	ColumnName       Column = "name"
	ColumnPrice      Column = "price"
	ColumnQuantity   Column = "quantity"
	ColumnTotalValue Column = "total_value"
)

var columns = []Column{ColumnID, ColumnName, ColumnPrice, ColumnQuantity, ColumnTotalValue}

// ParseColumn resolves a column key case-insensitively.
func ParseColumn(s string) (Column, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	for _, c := range columns {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c Column) Numeric() bool {
	return c != ColumnName
}

// DisplayValue is the text shown for p in column c.
func DisplayValue(p model.Product, c Column) string {
	switch c {
	case ColumnID:
		return strconv.FormatInt(p.ID, 10)
	case ColumnName:
		return p.Name
	case ColumnPrice:
		return render.FormatMoney(p.Price)
	case ColumnQuantity:
		return render.FormatCount(p.Quantity)
	case ColumnTotalValue:
		return render.FormatMoney(p.TotalValue())
	}
	return ""
}

// Sort returns a stably sorted copy of rows. Rows with equal keys keep the
// order they had in rows, in both directions.
func Sort(rows []model.Product, c Column, reverse bool) []model.Product {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b model.Product) int {
		cmp := compareCells(c, DisplayValue(a, c), DisplayValue(b, c))
		if reverse {
			return -cmp
		}
		return cmp
	})
	return sorted
}

func compareCells(c Column, a, b string) int {
	if c.Numeric() {
		da, errA := parseNumeric(a)
		db, errB := parseNumeric(b)
		if errA == nil && errB == nil {
			return da.Cmp(db)
		}
	}
	return strings.Compare(a, b)
}

func parseNumeric(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(currencyStripper.Replace(strings.TrimSpace(s)))
}

// SortToggle remembers the next direction per column: the first sort on a
// column is ascending and each later one flips it.
type SortToggle struct {
	reverse map[Column]bool
}

func NewSortToggle() *SortToggle {
	return &SortToggle{reverse: make(map[Column]bool)}
}

// Next returns the direction to use for c now.
func (t *SortToggle) Next(c Column) bool {
	r := t.reverse[c]
	t.reverse[c] = !r
	return r
}
