package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository persists cart lines. (customerId, productId) is unique.
type CartRepository interface {
	// Upsert inserts the line, or adds its quantity to the existing line of
	// the same customer and product. It returns the stored line.
	Upsert(ctx context.Context, item *cart.Item) (*cart.Item, error)

	Update(ctx context.Context, item *cart.Item) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*cart.Item, error)

	// FindForUpdate locks and returns the customer's line for productID.
	FindForUpdate(ctx context.Context, customerID, productID kernel.UUID) (*cart.Item, error)

	// ListByCustomer returns the customer's lines, newest first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.Item, error)

	DeleteByCustomer(ctx context.Context, customerID kernel.UUID) error

	// DeleteUpdatedBefore removes lines untouched since cutoff and returns
	// how many were removed.
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
