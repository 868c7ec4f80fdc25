package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces every editable attribute of a product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID kernel.UUID, details product.Details) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID   { return c.productID }
func (c UpdateProductCommand) Details() product.Details { return c.details }
