package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/simgeozgundondu/product-management-app/api/responses"
	"github.com/simgeozgundondu/product-management-app/api/validators"
	"github.com/simgeozgundondu/product-management-app/internal/catalog"
	pkgerrors "github.com/simgeozgundondu/product-management-app/pkg/errors"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
)

// ProductList serves one page of the committed filtered view.
func ProductList(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 0
		if raw := r.URL.Query().Get("page"); raw != "" {
			// A malformed page number falls back to the current page.
			if n, err := strconv.Atoi(raw); err == nil {
				page = n
			}
		}

		var (
			items     catalog.Collection
			resolved  int
			pageCount int
			total     int
		)
		if page > 0 {
			items, resolved, pageCount, total = engine.Page(page)
		} else {
			items, resolved, pageCount, total = engine.CurrentPage()
		}

		responses.WriteSuccess(w, catalog.PageDTO{
			Items:     catalog.ToDTOs(items),
			Page:      resolved,
			PageCount: pageCount,
			PageSize:  len(items),
			Total:     total,
		})
	}
}

// ProductDetail serves one product with its derived display fields.
func ProductDetail(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		p, err := engine.Get(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ToDTO(p))
	}
}

// ProductCreate validates and appends a product.
func ProductCreate(engine *catalog.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := payload.toProduct()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		added, err := engine.Append(r.Context(), product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalog.ToDTO(added))
	}
}

type createProductRequest struct {
	ProductName      string   `json:"productName" validate:"required,product_name"`
	SellerInfo       string   `json:"sellerInfo" validate:"required,seller_info"`
	StockCount       int      `json:"stockCount" validate:"gte=0"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice  *float64 `json:"discountedPrice,omitempty" validate:"omitempty,gte=0"`
	Category         string   `json:"category" validate:"required,category_name"`
	ProductImageURLs []string `json:"productImageUrls" validate:"max=3,dive,url"`
}

func (r createProductRequest) toProduct() (catalog.Product, error) {
	p := catalog.Product{
		ProductName:      r.ProductName,
		SellerInfo:       r.SellerInfo,
		StockCount:       r.StockCount,
		Price:            decimal.NewFromFloat(r.Price),
		Category:         r.Category,
		ProductImageURLs: r.ProductImageURLs,
	}
	if r.DiscountedPrice != nil {
		d := decimal.NewFromFloat(*r.DiscountedPrice)
		p.DiscountedPrice = &d
	}
	return p, nil
}
