package controllers

import (
	"net/http"

	"github.com/simgeozgundondu/product-management-app/api/responses"
	"github.com/simgeozgundondu/product-management-app/api/validators"
	"github.com/simgeozgundondu/product-management-app/internal/catalog"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
)

// CatalogSellers lists the seller facet values.
func CatalogSellers(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.Sellers())
	}
}

// CatalogCategories lists the category facet values.
func CatalogCategories(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.Categories())
	}
}

// FilterStage merges partial criteria into the staged state. Nothing is
// committed; the response echoes the staged criteria after clamping.
func FilterStage(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch catalog.CriteriaPatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, engine.StageFilter(patch))
	}
}

// FilterFetch returns the staged criteria.
func FilterFetch(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.StagedFilter())
	}
}

// FilterApply commits the staged criteria and returns page 1 of the new view.
func FilterApply(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.ApplyFilter()
		items, page, pageCount, total := engine.CurrentPage()
		responses.WriteSuccess(w, catalog.PageDTO{
			Items:     catalog.ToDTOs(items),
			Page:      page,
			PageCount: pageCount,
			PageSize:  len(items),
			Total:     total,
		})
	}
}

// FilterClear resets staged and committed criteria to the defaults.
func FilterClear(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.ClearFilter()
		items, page, pageCount, total := engine.CurrentPage()
		responses.WriteSuccess(w, catalog.PageDTO{
			Items:     catalog.ToDTOs(items),
			Page:      page,
			PageCount: pageCount,
			PageSize:  len(items),
			Total:     total,
		})
	}
}

// CatalogSearch runs one typeahead keystroke and returns the dropdown state.
func CatalogSearch(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits := engine.SearchTypeahead(r.URL.Query().Get("q"))
		query, _, active, open := engine.Search().State()
		responses.WriteSuccess(w, catalog.SearchStateDTO{
			Query:       query,
			Suggestions: catalog.ToSuggestionDTOs(hits),
			ActiveIndex: active,
			Open:        open,
		})
	}
}

// CatalogSearchSelect commits one suggestion and returns the full product.
func CatalogSearchSelect(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID int64 `json:"productId" validate:"required"`
		}
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		p, err := engine.SelectSearchResult(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ToDTO(p))
	}
}
