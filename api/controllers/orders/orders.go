// Package orders serves the order intake endpoint.
package orders

import (
	"net/http"

	"github.com/larekshop/storefront/api/responses"
	"github.com/larekshop/storefront/api/validators"
	"github.com/larekshop/storefront/internal/shop"
	pkgerrors "github.com/larekshop/storefront/pkg/errors"
	"github.com/larekshop/storefront/pkg/logger"
)

// CreateRequest is the order submission wire shape.
type CreateRequest struct {
	Payment string   `json:"payment" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	Phone   string   `json:"phone" validate:"required"`
	Address string   `json:"address" validate:"required"`
	Total   int64    `json:"total" validate:"required,min=1"`
	Items   []string `json:"items" validate:"required,min=1,dive,required"`
}

// Create accepts an order submission.
func Create(svc shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		var req CreateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.PlaceOrder(r.Context(), shop.PlaceOrderInput{
			Payment: req.Payment,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
			Total:   req.Total,
			Items:   req.Items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, receipt)
	}
}
