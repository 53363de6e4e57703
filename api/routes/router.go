package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simgeozgundondu/product-management-app/api/controllers"
	"github.com/simgeozgundondu/product-management-app/api/middleware"
	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
	"github.com/simgeozgundondu/product-management-app/internal/catalog"
	"github.com/simgeozgundondu/product-management-app/pkg/config"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
	"github.com/simgeozgundondu/product-management-app/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	blobs blobstore.Store,
	engine *catalog.Engine,
	httpMetrics *metrics.HTTPMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware())
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, blobs))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(engine, logg))
			r.Post("/", controllers.ProductCreate(engine, logg))
			r.Get("/{productId}", controllers.ProductDetail(engine, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/sellers", controllers.CatalogSellers(engine, logg))
			r.Get("/categories", controllers.CatalogCategories(engine, logg))

			r.Route("/filter", func(r chi.Router) {
				r.Get("/", controllers.FilterFetch(engine, logg))
				r.Put("/", controllers.FilterStage(engine, logg))
				r.Post("/apply", controllers.FilterApply(engine, logg))
				r.Post("/clear", controllers.FilterClear(engine, logg))
			})

			r.Get("/search", controllers.CatalogSearch(engine, logg))
			r.Post("/search/select", controllers.CatalogSearchSelect(engine, logg))
		})
	})

	return r
}
