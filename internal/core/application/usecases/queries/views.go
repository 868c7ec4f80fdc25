// Package queries contains read-side operations. Handlers read straight from
// the database through GORM and return flat views; they never load
// aggregates.
package queries

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// ProductView is a menu product as shown to customers and staff.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CartLineView is a cart line joined with the live product.
type CartLineView struct {
	ID                 kernel.UUID
	ProductID          kernel.UUID
	ProductName        string
	ProductDescription string
	ProductImageURL    string
	ProductCategory    string
	Price              int64
	Quantity           int
	Subtotal           int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CartView is the whole cart of a customer, lines newest first.
type CartView struct {
	Items       []CartLineView
	TotalAmount int64
	ItemCount   int
}

type CustomerView struct {
	ID          kernel.UUID
	LineUserID  string
	DisplayName string
	PictureURL  string
	Nickname    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// CustomerSummary is the customer shown next to an order.
type CustomerSummary struct {
	ID          kernel.UUID
	DisplayName string
	PictureURL  string
}

// OrderItemView is an order line. ProductImageURL is empty when the product
// has since been deleted.
type OrderItemView struct {
	ID              kernel.UUID
	ProductID       kernel.UUID
	ProductName     string
	ProductPrice    int64
	ProductImageURL string
	Quantity        int
	Subtotal        int64
}

type OrderView struct {
	ID            kernel.UUID
	OrderNumber   string
	Customer      CustomerSummary
	Status        string
	TotalAmount   int64
	PaymentStatus string
	PaymentMethod string
	Items         []OrderItemView
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// OrderPage is one page of the back-office order list.
type OrderPage struct {
	Orders []OrderView
	Total  int64
	Limit  int
	Offset int
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
