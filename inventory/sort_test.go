package inventory

import (
	"optiedge/model"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func names(rows []model.Product) []string {
	out := make([]string, len(rows))
	for i, p := range rows {
		out[i] = p.Name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortStableAndReversible(t *testing.T) {
	rows := []model.Product{
		{ID: 1, Name: "B", Price: decimal.NewFromInt(1), Quantity: 3},
		{ID: 2, Name: "A", Price: decimal.NewFromInt(1), Quantity: 3},
		{ID: 3, Name: "C", Price: decimal.NewFromInt(1), Quantity: 1},
	}

	asc := Sort(rows, ColumnQuantity, false)
	if got, want := names(asc), []string{"C", "B", "A"}; !equalNames(got, want) {
		t.Errorf("ascending = %v, want %v", got, want)
	}
	desc := Sort(asc, ColumnQuantity, true)
	if got, want := names(desc), []string{"B", "A", "C"}; !equalNames(got, want) {
		t.Errorf("descending = %v, want %v", got, want)
	}
	if got := names(rows); !equalNames(got, []string{"B", "A", "C"}) {
		t.Errorf("input was modified: %v", got)
	}
}

func TestSortNumericColumns(t *testing.T) {
	rows := []model.Product{
		{ID: 10, Name: "ten", Price: decimal.RequireFromString("1000"), Quantity: 2},
		{ID: 9, Name: "nine", Price: decimal.RequireFromString("99.5"), Quantity: 30},
		{ID: 100, Name: "hundred", Price: decimal.RequireFromString("5"), Quantity: 1},
	}

	tests := []struct {
		col  Column
		want []string
	}{
		{ColumnID, []string{"nine", "ten", "hundred"}},
		{ColumnPrice, []string{"hundred", "nine", "ten"}},
		{ColumnQuantity, []string{"hundred", "ten", "nine"}},
		{ColumnTotalValue, []string{"hundred", "ten", "nine"}},
		{ColumnName, []string{"hundred", "nine", "ten"}},
	}
	for _, tt := range tests {
		if got := names(Sort(rows, tt.col, false)); !equalNames(got, tt.want) {
			t.Errorf("Sort by %s = %v, want %v", tt.col, got, tt.want)
		}
	}
}

func TestSortLargePricesKeepCents(t *testing.T) {
	rows := []model.Product{
		{ID: 1, Name: "high", Price: decimal.RequireFromString("12345678901234567.89"), Quantity: 1},
		{ID: 2, Name: "low", Price: decimal.RequireFromString("12345678901234567.88"), Quantity: 1},
	}
	for _, col := range []Column{ColumnPrice, ColumnTotalValue} {
		if got, want := names(Sort(rows, col, false)), []string{"low", "high"}; !equalNames(got, want) {
			t.Errorf("Sort by %s = %v, want %v", col, got, want)
		}
		if got, want := names(Sort(rows, col, true)), []string{"high", "low"}; !equalNames(got, want) {
			t.Errorf("reverse Sort by %s = %v, want %v", col, got, want)
		}
	}
}

func TestCompareCellsFallsBackToText(t *testing.T) {
	if got := compareCells(ColumnPrice, "₦1,000.00", "₦99.00"); got <= 0 {
		t.Errorf("numeric compare = %d, want > 0", got)
	}
	if got, want := compareCells(ColumnPrice, "n/a", "₦99.00"), strings.Compare("n/a", "₦99.00"); got != want {
		t.Errorf("text fallback = %d, want %d", got, want)
	}
}

func TestSortToggle(t *testing.T) {
	toggle := NewSortToggle()
	want := []bool{false, true, false}
	for i, w := range want {
		if got := toggle.Next(ColumnPrice); got != w {
			t.Errorf("click %d on price = %v, want %v", i+1, got, w)
		}
	}
	if toggle.Next(ColumnName) {
		t.Error("first click on another column should sort ascending")
	}
}

func TestParseColumn(t *testing.T) {
	for in, want := range map[string]Column{
		"ID": ColumnID, "name": ColumnName, "Total Value": ColumnTotalValue, "total_value": ColumnTotalValue,
	} {
		got, ok := ParseColumn(in)
		if !ok || got != want {
			t.Errorf("ParseColumn(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseColumn("colour"); ok {
		t.Error("ParseColumn accepted an unknown column")
	}
}
