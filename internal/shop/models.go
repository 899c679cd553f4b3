// Package shop is the server side of the storefront: the product catalog and
// order intake backing the /product and /order endpoints.
package shop

import "time"

// Product is a catalog item. Price is nullable: a nil price marks an item
// that can be browsed but never bought. The JSON tags are the wire shape the
// storefront consumes.
type Product struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Price       *int64 `json:"price"`
}

// Order is an accepted order.
type Order struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	Payment   string      `gorm:"not null" json:"payment"`
	Email     string      `gorm:"not null" json:"email"`
	Phone     string      `gorm:"not null" json:"phone"`
	Address   string      `gorm:"not null" json:"address"`
	Total     int64       `gorm:"not null" json:"total"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
	CreatedAt time.Time   `json:"-"`
}

// OrderItem links an order to one purchased product.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string `gorm:"index;not null" json:"-"`
	ProductID string `gorm:"not null" json:"productId"`
}
