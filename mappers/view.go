package mappers

import (
	"optiedge/model"
	"optiedge/render"
)

// ToProductView converts a product to the form sent to the browser.
func ToProductView(p model.Product) model.ProductView {
	return model.ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price.StringFixed(2),
		PriceDisplay: render.FormatMoney(p.Price),
		Quantity:     p.Quantity,
		TotalValue:   p.TotalValue().StringFixed(2),
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProductViews(products []model.Product) []model.ProductView {
	views := make([]model.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ToProductView(p))
	}
	return views
}

func ToTotalsView(t model.Totals) model.TotalsView {
	return model.TotalsView{
		Quantity:        t.Quantity,
		Value:           t.Value.StringFixed(2),
		QuantityDisplay: render.FormatCount(t.Quantity),
		ValueDisplay:    render.FormatMoney(t.Value),
	}
}
