package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand sets the absolute quantity of a cart line.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemQuantityCommand(customerID, itemID kernel.UUID, quantity int) (UpdateCartItemQuantityCommand, error) {
	if err := errors.Join(customerID.Validate(), itemID.Validate()); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}
	if quantity < 1 || quantity > cart.MaxQuantity {
		return UpdateCartItemQuantityCommand{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, cart.MaxQuantity)
	}
	return UpdateCartItemQuantityCommand{
		customerID: customerID,
		itemID:     itemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

func (c UpdateCartItemQuantityCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCartItemQuantityCommand) ItemID() kernel.UUID     { return c.itemID }
func (c UpdateCartItemQuantityCommand) Quantity() int           { return c.quantity }
