package inventory

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// Input is a validated product form.
type Input struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

var (
	currencyStripper  = strings.NewReplacer("₦", "", "$", "", "€", "", "£", "", "¥", "", ",", "", " ", "")
	thousandsStripper = strings.NewReplacer(",", "", " ", "")
)

// ParseInput validates the raw form fields in order name, price, quantity and
// returns the first failure as a *ValidationError.
func ParseInput(name, price, quantity string) (Input, error) {
	name = strings.TrimSpace(name)
	price = strings.TrimSpace(price)
	quantity = strings.TrimSpace(quantity)

	for _, f := range []struct{ field, value string }{
		{FieldName, name},
		{FieldPrice, price},
		{FieldQuantity, quantity},
	} {
		if f.value == "" {
			return Input{}, &ValidationError{Field: f.field, Message: "All fields are required"}
		}
	}

	p, err := ParsePrice(price)
	if err != nil {
		return Input{}, err
	}
	q, err := ParseQuantity(quantity)
	if err != nil {
		return Input{}, err
	}
	return Input{Name: name, Price: p, Quantity: q}, nil
}

// ParsePrice accepts values such as "₦1,250.50" or "10". Only digits and a
// single decimal point are allowed, so signs and exponents are rejected.
func ParsePrice(s string) (decimal.Decimal, error) {
	cleaned := currencyStripper.Replace(strings.TrimSpace(s))
	invalid := &ValidationError{Field: FieldPrice, Message: "Price must be a non-negative number"}
	if !isPlainDecimal(cleaned) {
		return decimal.Zero, invalid
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Zero, invalid
	}
	// The store keeps prices as REAL.
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, invalid
	}
	return d, nil
}

func isPlainDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// ParseQuantity accepts whole numbers such as "1,200".
func ParseQuantity(s string) (int64, error) {
	cleaned := thousandsStripper.Replace(strings.TrimSpace(s))
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		if _, ferr := strconv.ParseFloat(cleaned, 64); ferr == nil {
			return 0, &ValidationError{Field: FieldQuantity, Message: "Quantity must be a whole number"}
		}
		return 0, &ValidationError{Field: FieldQuantity, Message: "Quantity must be a non-negative integer"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: FieldQuantity, Message: "Quantity must be a non-negative integer"}
	}
	return n, nil
}
