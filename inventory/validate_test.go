package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name, price, qty string
		wantField        string
		wantPrice        string
		wantQty          int64
	}{
		{name: "Widget", price: "10", qty: "5", wantPrice: "10", wantQty: 5},
		{name: "  Widget  ", price: "₦1,250.50", qty: "1,200", wantPrice: "1250.5", wantQty: 1200},
		{name: "Widget", price: "$0", qty: "0", wantPrice: "0", wantQty: 0},
		{name: "", price: "10", qty: "5", wantField: FieldName},
		{name: "   ", price: "10", qty: "5", wantField: FieldName},
		{name: "Widget", price: "", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "-1", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "abc", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "1e400", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "1E2", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "+5", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "1.2.3", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: ".", qty: "5", wantField: FieldPrice},
		{name: "Widget", price: "1" + strings.Repeat("0", 400), qty: "5", wantField: FieldPrice},
		{name: "Widget", price: ".5", qty: "5", wantPrice: "0.5", wantQty: 5},
		{name: "Widget", price: "10", qty: "", wantField: FieldQuantity},
		{name: "Widget", price: "10", qty: "-3", wantField: FieldQuantity},
		{name: "Widget", price: "10", qty: "2.5", wantField: FieldQuantity},
		{name: "Widget", price: "10", qty: "many", wantField: FieldQuantity},
	}
	for _, tt := range tests {
		in, err := ParseInput(tt.name, tt.price, tt.qty)
		if tt.wantField != "" {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("ParseInput(%q, %q, %q) error = %v, want ValidationError", tt.name, tt.price, tt.qty, err)
				continue
			}
			if verr.Field != tt.wantField {
				t.Errorf("ParseInput(%q, %q, %q) field = %s, want %s", tt.name, tt.price, tt.qty, verr.Field, tt.wantField)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInput(%q, %q, %q) unexpected error: %v", tt.name, tt.price, tt.qty, err)
			continue
		}
		if in.Name != "Widget" {
			t.Errorf("Name = %q", in.Name)
		}
		if !in.Price.Equal(decimal.RequireFromString(tt.wantPrice)) {
			t.Errorf("Price = %s, want %s", in.Price, tt.wantPrice)
		}
		if in.Quantity != tt.wantQty {
			t.Errorf("Quantity = %d, want %d", in.Quantity, tt.wantQty)
		}
	}
}

func TestMissingFieldMessage(t *testing.T) {
	_, err := ParseInput("Widget", "", "")
	if err == nil || err.Error() != "All fields are required" {
		t.Errorf("error = %v", err)
	}
}
