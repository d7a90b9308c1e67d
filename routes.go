package main

import (
	"net/http"
	"optiedge/auth"
	"optiedge/config"
	"optiedge/inventory"
	"optiedge/product"
)

func SetupRoutes(mux *http.ServeMux, svc *inventory.Service, prefs *config.Store, sessions *auth.Sessions) {
	mux.HandleFunc("POST /api/login", auth.LoginHandler(svc, sessions))
	mux.HandleFunc("POST /api/logout", auth.LogoutHandler())

	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, sessions.Require(h))
	}

	protected("GET /api/products", product.ListProductsHandler(svc, prefs))
	protected("POST /api/products", product.CreateProductHandler(svc))
	protected("GET /api/products/{id}", product.GetProductHandler(svc))
	protected("PUT /api/products/{id}", product.UpdateProductHandler(svc))
	protected("DELETE /api/products/{id}", product.DeleteProductHandler(svc))
	protected("GET /api/totals", product.TotalsHandler(svc))

	protected("GET /api/export/csv", product.ExportCSVHandler(svc))
	protected("GET /api/export/csv/{id}", product.ExportProductCSVHandler(svc))

	protected("GET /api/prefs", GetPrefsHandler(prefs))
	protected("POST /api/prefs", SavePrefsHandler(prefs))
}
