package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the customer's whole cart.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(customerID kernel.UUID) (PlaceOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return PlaceOrderCommand{}, err
	}
	return PlaceOrderCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }
