package product

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"optiedge/export"
	"optiedge/inventory"
)

func writeCSV(w http.ResponseWriter, fileName string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(fileName))
	w.Write(body)
}

// ExportCSVHandler streams every product as inventory_export.csv.
func ExportCSVHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := svc.ExportCSV(&buf); err != nil {
			if errors.Is(err, inventory.ErrNoProducts) {
				writeJSONError(w, "No products to export", http.StatusNotFound)
				return
			}
			writeServiceError(w, err, "")
			return
		}
		writeCSV(w, export.AllProductsFileName, buf.Bytes())
	}
}

// ExportProductCSVHandler streams the selected product as product_<id>.csv.
func ExportProductCSVHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSONError(w, "Select a row to export", http.StatusBadRequest)
			return
		}
		var buf bytes.Buffer
		if err := svc.ExportProductCSV(&buf, id); err != nil {
			writeServiceError(w, err, "Select a row to export")
			return
		}
		writeCSV(w, export.ProductFileName(id), buf.Bytes())
	}
}
