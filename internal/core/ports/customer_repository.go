package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerRepository persists storefront customers. lineUserId is unique.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// FindByLineUserID returns errs.ObjectNotFoundError when nobody has
	// signed in with that LINE account yet.
	FindByLineUserID(ctx context.Context, lineUserID string) (*customer.Customer, error)
}
