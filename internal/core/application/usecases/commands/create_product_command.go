package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the menu.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(kernel.NewUUID(), product.Details{
//	    Name: "テリヤキバーガー", Price: 480, Category: product.Burger, IsActive: true,
//	})
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

// NewCreateProductCommand checks the identifier only; product rules are
// enforced by the aggregate when the handler builds it.
func NewCreateProductCommand(productID kernel.UUID, details product.Details) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID   { return c.productID }
func (c CreateProductCommand) Details() product.Details { return c.details }
