// Package ports declares the contracts between the ordering core and its
// adapters: repositories bound to a unit of work, the event publisher and the
// identity provider.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
)

// ProductRepository persists menu products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Delete removes a product. Cart lines referencing it go with it; order
	// items keep their snapshot.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetMany loads the products with the given ids. Unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
