package services

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"
)

var ErrCartIsEmpty = errs.NewValueIsInvalidError("cart is empty")

// CheckoutLine pairs a cart line with the product it points at.
type CheckoutLine struct {
	Item    *cart.Item
	Product *product.Product
}

// Checkout builds orders from cart contents.
type Checkout struct {
	newNumber func(time.Time) order.Number
}

func NewCheckout() Checkout {
	return Checkout{newNumber: order.NewNumber}
}

// NewCheckoutWithNumbers lets callers control order numbering.
func NewCheckoutWithNumbers(newNumber func(time.Time) order.Number) Checkout {
	return Checkout{newNumber: newNumber}
}

// PlaceOrder snapshots lines into a pending order owned by customerID.
func (c Checkout) PlaceOrder(customerID kernel.UUID, lines []CheckoutLine, now time.Time) (*order.Order, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		if line.Item == nil || line.Item.Quantity() <= 0 {
			continue
		}
		if err := line.Item.EnsureOwnedBy(customerID); err != nil {
			return nil, err
		}
		if line.Product == nil || !line.Product.ID().IsEqual(line.Item.ProductID()) {
			return nil, errs.NewObjectNotFoundError("product", line.Item.ProductID().String())
		}
		if err := line.Product.EnsureAvailable(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"product",
				fmt.Errorf("%s is no longer available: %w", line.Product.Name(), err),
			)
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			line.Product.ID(),
			line.Product.Name(),
			line.Product.Price(),
			line.Item.Quantity(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrCartIsEmpty
	}

	newNumber := c.newNumber
	if newNumber == nil {
		newNumber = order.NewNumber
	}
	return order.NewOrder(kernel.NewUUID(), newNumber(now), customerID, items, now)
}
