package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
	"github.com/simgeozgundondu/product-management-app/internal/catalog"
	"github.com/simgeozgundondu/product-management-app/pkg/config"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
	"github.com/simgeozgundondu/product-management-app/pkg/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	mem := blobstore.NewMemory()

	seed := catalog.Collection{
		{ID: 1, ProductName: "Red Shoe", SellerInfo: "Acme", Price: decimal.NewFromInt(50), Category: "Shoes"},
	}
	blob, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := mem.Save(context.Background(), "products", blob); err != nil {
		t.Fatalf("seed: %v", err)
	}

	engine, err := catalog.NewEngine(catalog.EngineParams{Blobs: mem, Key: "products"})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.Initialize(context.Background())

	cfg := &config.Config{}
	cfg.App.Env = "test"
	return NewRouter(cfg, logg, mem, engine, metrics.NewHTTPMetrics())
}

func TestRouterWiring(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health/live", http.StatusOK},
		{http.MethodGet, "/health/ready", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/products", http.StatusOK},
		{http.MethodGet, "/api/v1/products/1", http.StatusOK},
		{http.MethodGet, "/api/v1/products/404", http.StatusNotFound},
		{http.MethodGet, "/api/v1/catalog/sellers", http.StatusOK},
		{http.MethodGet, "/api/v1/catalog/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/catalog/filter", http.StatusOK},
		{http.MethodPost, "/api/v1/catalog/filter/apply", http.StatusOK},
		{http.MethodPost, "/api/v1/catalog/filter/clear", http.StatusOK},
		{http.MethodGet, "/api/v1/catalog/search?q=red", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d body=%s", tc.method, tc.path, tc.want, rec.Code, rec.Body.String())
		}
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("request id header must be set")
	}

	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Fatalf("inbound request id must be echoed, got %q", got)
	}
}
