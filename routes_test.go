package main

import (
	"net/http"
	"net/http/httptest"
	"optiedge/auth"
	"optiedge/config"
	"optiedge/database/dbtest"
	"optiedge/inventory"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*httptest.Server, *config.Store) {
	t.Helper()
	prefs, _ := config.Load(filepath.Join(t.TempDir(), "ui_prefs.json"))
	sessions, err := auth.NewSessions(time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	SetupRoutes(mux, inventory.NewService(dbtest.Open(t)), prefs, sessions)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, prefs
}

func TestProductRoutesNeedLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/products")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("status before login = %d", res.StatusCode)
	}

	res, err = http.Post(srv.URL+"/api/login", "application/json", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", res.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	for _, c := range res.Cookies() {
		req.AddCookie(c)
	}
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("status after login = %d", res.StatusCode)
	}
}

func TestSavePrefsValidatesDensity(t *testing.T) {
	srv, prefs := newTestServer(t)

	res, _ := http.Post(srv.URL+"/api/login", "application/json", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	res.Body.Close()
	cookies := res.Cookies()

	post := func(body string) int {
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/prefs", strings.NewReader(body))
		for _, c := range cookies {
			req.AddCookie(c)
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		return res.StatusCode
	}

	if code := post(`{"density":"Huge"}`); code != http.StatusBadRequest {
		t.Errorf("bad density status = %d", code)
	}
	if code := post(`{"density":"Compact","last_search":"bolt"}`); code != http.StatusOK {
		t.Errorf("save status = %d", code)
	}
	if got := prefs.Get(); got.Density != config.DensityCompact || got.LastSearch != "bolt" {
		t.Errorf("prefs = %+v", got)
	}
}
