package shop

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/larekshop/storefront/pkg/errors"
)

// Repository wires product and order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the shop tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Product{}, &Order{}, &OrderItem{})
}

// ListProducts returns the full catalog in insertion order.
func (r *Repository) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return products, nil
}

// FindProduct loads one product by id.
func (r *Repository) FindProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "NotFound")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}
	return &product, nil
}

// FindProducts loads the products for the given ids, keyed by id.
func (r *Repository) FindProducts(ctx context.Context, ids []string) (map[string]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find products")
	}
	byID := make(map[string]Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	return byID, nil
}

// CreateOrder stores the order together with its line items in one
// transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	return nil
}

// CountProducts reports how many products the catalog holds.
func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count products")
	}
	return count, nil
}

// InsertProducts bulk-inserts catalog items. Used by seeding.
func (r *Repository) InsertProducts(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert products")
	}
	return nil
}
