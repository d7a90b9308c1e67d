package model

import "github.com/shopspring/decimal"

// Product is one row of the products table.
type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UpdatedAt string          `db:"updated_at" json:"updatedAt"`
}

// TotalValue returns price × quantity.
func (p Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}

type Totals struct {
	Quantity int64           `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// ProductView is the display form of a Product sent to the browser.
type ProductView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	PriceDisplay string `json:"priceDisplay"`
	Quantity     int64  `json:"quantity"`
	TotalValue   string `json:"totalValue"`
	UpdatedAt    string `json:"updatedAt"`
}

type TotalsView struct {
	Quantity        int64  `json:"quantity"`
	Value           string `json:"value"`
	QuantityDisplay string `json:"quantityDisplay"`
	ValueDisplay    string `json:"valueDisplay"`
}
