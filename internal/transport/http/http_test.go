package httptransport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
)

func setCorsConfig(t *testing.T) {
	t.Helper()

	viper.Set("server.http.cors.allowed_origins", []string{"http://localhost:3000"})
	viper.Set("server.http.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.Set("server.http.cors.allowed_headers", []string{
		"Accept", "Content-Type", "X-User-Id", "X-User-Name", "X-User-Email", "X-User-Role",
	})
	viper.Set("server.http.cors.allow_credentials", true)

	t.Cleanup(viper.Reset)
}

func TestPreflightAnsweredWithoutIdentityHeaders(t *testing.T) {
	setCorsConfig(t)

	router := newRouter()
	router.Post("/api/v1/orders", func(_ http.ResponseWriter, _ *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 200 or 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want allowed origin", got)
	}
}

func TestRequestWithoutIdentityStillRejected(t *testing.T) {
	setCorsConfig(t)

	router := newRouter()
	var reached bool
	router.Get("/api/v1/orders", func(_ http.ResponseWriter, _ *http.Request) {
		reached = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler reached without identity headers")
	}
}

func TestIdentifiedCrossOriginRequestPasses(t *testing.T) {
	setCorsConfig(t)

	router := newRouter()
	router.Get("/api/v1/orders", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("X-User-Id", "7")
	req.Header.Set("X-User-Role", "USER")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want allowed origin", got)
	}
}
