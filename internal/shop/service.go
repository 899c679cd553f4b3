package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/larekshop/storefront/pkg/enums"
	pkgerrors "github.com/larekshop/storefront/pkg/errors"
)

// Service exposes the shop's catalog and order intake operations.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderReceipt, error)
}

// PlaceOrderInput is the validated order submission.
type PlaceOrderInput struct {
	Payment string
	Email   string
	Phone   string
	Address string
	Total   int64
	Items   []string
}

// OrderReceipt acknowledges an accepted order.
type OrderReceipt struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

type service struct {
	repo *Repository
}

// NewService constructs the shop service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.repo.FindProduct(ctx, id)
}

// PlaceOrder checks the submission against the catalog and stores it. The
// claimed total must match the catalog's prices exactly; priceless or
// unknown items are rejected rather than silently dropped, since the
// storefront sanitizes before submitting.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderReceipt, error) {
	if !enums.PaymentMethod(input.Payment).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}

	byID, err := s.repo.FindProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	var total int64
	items := make([]OrderItem, 0, len(input.Items))
	for _, id := range input.Items {
		product, ok := byID[id]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown product %s", id))
		}
		if product.Price == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %s is not for sale", id))
		}
		total += *product.Price
		items = append(items, OrderItem{ProductID: id})
	}
	if total != input.Total {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wrong total")
	}

	order := &Order{
		ID:      uuid.NewString(),
		Payment: input.Payment,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Total:   total,
		Items:   items,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	return &OrderReceipt{ID: order.ID, Total: order.Total}, nil
}
