package controllers

import (
	"net/http"

	"github.com/simgeozgundondu/product-management-app/api/responses"
	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
	"github.com/simgeozgundondu/product-management-app/pkg/config"
	pkgerrors "github.com/simgeozgundondu/product-management-app/pkg/errors"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Catalog-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, blobs blobstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Catalog-Env", cfg.App.Env)
		if blobs != nil {
			if err := blobs.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "blob store unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
