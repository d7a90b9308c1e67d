package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"optiedge/config"
	"optiedge/inventory"
	"optiedge/mappers"
	"optiedge/model"
	"optiedge/render"
	"strconv"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, v interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, map[string]string{"message": message}, statusCode)
}

// writeServiceError maps core errors to responses. Storage failures are logged
// and reported as 500; the server keeps running.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	var verr *inventory.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, map[string]string{"message": verr.Message, "field": verr.Field}, http.StatusBadRequest)
	case errors.Is(err, inventory.ErrNotFound):
		writeJSONError(w, notFoundMessage, http.StatusNotFound)
	case errors.Is(err, inventory.ErrTotalOverflow):
		writeJSONError(w, "Total quantity is too large to display", http.StatusUnprocessableEntity)
	default:
		log.Error().Err(err).Msg("product operation failed")
		writeJSONError(w, "Database error: "+err.Error(), http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

type productForm struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type listResponse struct {
	Products  []model.ProductView `json:"products"`
	Totals    model.TotalsView    `json:"totals"`
	TableHTML string              `json:"tableHtml"`
	Query     string              `json:"query"`
	Sort      string              `json:"sort"`
	Reverse   bool                `json:"reverse"`
}

// ListProductsHandler returns the filtered and sorted row set, the totals and
// the rendered table. The query and sort order are remembered in prefs.
func ListProductsHandler(svc *inventory.Service, prefs *config.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := q.Get("q")
		reverse := q.Get("reverse") == "true"

		var column inventory.Column
		if raw := q.Get("sort"); raw != "" {
			c, ok := inventory.ParseColumn(raw)
			if !ok {
				writeJSONError(w, "Unknown sort column: "+raw, http.StatusBadRequest)
				return
			}
			column = c
		}

		products, err := svc.Search(query)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		if column != "" {
			products = inventory.Sort(products, column, reverse)
		}

		totals, err := svc.Totals()
		if err != nil {
			writeServiceError(w, err, "")
			return
		}

		if err := prefs.Update(func(p *config.Prefs) {
			p.LastSearch = query
			p.SortColumn = string(column)
			p.SortReverse = reverse
		}); err != nil {
			log.Warn().Err(err).Msg("failed to save prefs")
		}

		writeJSON(w, listResponse{
			Products:  mappers.ToProductViews(products),
			Totals:    mappers.ToTotalsView(totals),
			TableHTML: render.RenderProductTableHTML(products, string(column), reverse),
			Query:     query,
			Sort:      string(column),
			Reverse:   reverse,
		}, http.StatusOK)
	}
}

func GetProductHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSONError(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		p, err := svc.Get(id)
		if err != nil {
			writeServiceError(w, err, "Product not found")
			return
		}
		writeJSON(w, mappers.ToProductView(p), http.StatusOK)
	}
}

func CreateProductHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input productForm
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSONError(w, "Invalid request", http.StatusBadRequest)
			return
		}
		p, err := svc.Add(input.Name, input.Price, input.Quantity)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeJSON(w, mappers.ToProductView(p), http.StatusCreated)
	}
}

func UpdateProductHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSONError(w, "Select a product to update", http.StatusBadRequest)
			return
		}
		var input productForm
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSONError(w, "Invalid request", http.StatusBadRequest)
			return
		}
		p, err := svc.Update(id, input.Name, input.Price, input.Quantity)
		if err != nil {
			writeServiceError(w, err, "Product no longer exists. Select a product to update")
			return
		}
		writeJSON(w, mappers.ToProductView(p), http.StatusOK)
	}
}

func DeleteProductHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSONError(w, "Select a product to delete", http.StatusBadRequest)
			return
		}
		deleted, err := svc.Delete(id)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeJSON(w, map[string]interface{}{"message": "Product deleted", "deleted": deleted}, http.StatusOK)
	}
}

func TotalsHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := svc.Totals()
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeJSON(w, mappers.ToTotalsView(totals), http.StatusOK)
	}
}
