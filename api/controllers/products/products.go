// Package products serves the catalog read endpoints.
package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/larekshop/storefront/api/responses"
	"github.com/larekshop/storefront/internal/shop"
	pkgerrors "github.com/larekshop/storefront/pkg/errors"
	"github.com/larekshop/storefront/pkg/logger"
)

// ListResponse is the catalog list wire shape.
type ListResponse struct {
	Total int            `json:"total"`
	Items []shop.Product `json:"items"`
}

// List returns the full catalog.
func List(svc shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		items, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if items == nil {
			items = []shop.Product{}
		}
		responses.WriteSuccess(w, ListResponse{Total: len(items), Items: items})
	}
}

// Get returns one product by id.
func Get(svc shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
