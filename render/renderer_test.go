package render

import (
	"optiedge/model"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₦0.00"},
		{"5.5", "₦5.50"},
		{"1234.5", "₦1,234.50"},
		{"1000000", "₦1,000,000.00"},
		{"999.995", "₦1,000.00"},
		{"123456", "₦123,456.00"},
		{"12345678901234567.89", "₦12,345,678,901,234,567.89"},
		{"-1234.5", "₦-1,234.50"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatCount(12000); got != "12,000" {
		t.Errorf("FormatCount(12000) = %q", got)
	}
}

func TestRenderProductTableHTML(t *testing.T) {
	products := []model.Product{
		{ID: 7, Name: "<b>Bolt</b>", Price: decimal.NewFromInt(2), Quantity: 3},
		{ID: 6, Name: "Nut", Price: decimal.NewFromInt(1), Quantity: 1},
	}
	html := RenderProductTableHTML(products, "price", true)

	for _, want := range []string{
		`data-column="price">Price ▼</th>`,
		`<tr class="evenrow" data-id="7">`,
		`<tr class="oddrow" data-id="6">`,
		`&lt;b&gt;Bolt&lt;/b&gt;`,
		`₦6.00`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("table HTML missing %q", want)
		}
	}
	if strings.Contains(html, "<b>Bolt") {
		t.Error("product name was not escaped")
	}

	empty := RenderProductTableHTML(nil, "", false)
	if !strings.Contains(empty, "No products found.") {
		t.Error("empty table has no placeholder row")
	}
}
