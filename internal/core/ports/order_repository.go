package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items.
type OrderRepository interface {
	// Add persists a new order with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, payment and timestamps. Items are immutable and
	// are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items. Returns errs.ObjectNotFoundError when
	// the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListPendingPlacedBefore returns up to limit pending orders created
	// before cutoff, oldest first, locked for update.
	ListPendingPlacedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error)
}
