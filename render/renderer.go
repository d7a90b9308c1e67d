package render

import (
	"fmt"
	"html"
	"optiedge/model"
	"strings"
)

// TableColumns are the product table headings in display order.
var TableColumns = []struct {
	Key   string
	Label string
	Class string
}{
	{"id", "ID", "center col-id"},
	{"name", "Name", "col-name"},
	{"price", "Price", "right col-price"},
	{"quantity", "Quantity", "right col-quantity"},
	{"total_value", "Total Value", "right col-total"},
}

// RenderProductTableHTML builds the <thead>/<tbody> markup of the product table.
// sortColumn marks the heading currently used for ordering.
func RenderProductTableHTML(products []model.Product, sortColumn string, reverse bool) string {
	var sb strings.Builder

	sb.WriteString(`<thead><tr>`)
	for _, col := range TableColumns {
		arrow := ""
		if col.Key == sortColumn {
			arrow = " ▲"
			if reverse {
				arrow = " ▼"
			}
		}
		sb.WriteString(fmt.Sprintf(`<th class="%s sortable" data-column="%s">%s%s</th>`, col.Class, col.Key, col.Label, arrow))
	}
	sb.WriteString(`</tr></thead>`)

	sb.WriteString(`<tbody>`)
	if len(products) == 0 {
		sb.WriteString(fmt.Sprintf(`<tr><td colspan="%d">No products found.</td></tr>`, len(TableColumns)))
	}
	for i, p := range products {
		rowClass := "evenrow"
		if i%2 == 1 {
			rowClass = "oddrow"
		}
		sb.WriteString(fmt.Sprintf(`<tr class="%s" data-id="%d">`, rowClass, p.ID))
		sb.WriteString(fmt.Sprintf(`<td class="center col-id">%d</td>`, p.ID))
		sb.WriteString(fmt.Sprintf(`<td class="col-name">%s</td>`, html.EscapeString(p.Name)))
		sb.WriteString(fmt.Sprintf(`<td class="right col-price">%s</td>`, FormatMoney(p.Price)))
		sb.WriteString(fmt.Sprintf(`<td class="right col-quantity">%s</td>`, FormatCount(p.Quantity)))
		sb.WriteString(fmt.Sprintf(`<td class="right col-total">%s</td>`, FormatMoney(p.TotalValue())))
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody>`)

	return sb.String()
}
