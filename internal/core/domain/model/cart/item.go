// Package cart models the customer's shopping cart as a set of independent
// lines, one per (customer, product) pair. Adding a product that is already in
// the cart increments the existing line instead of creating a second one.
package cart

import (
	"errors"
	"math"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// MaxQuantity is the largest quantity the INTEGER column of a cart line holds.
const MaxQuantity = math.MaxInt32

var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem or RestoreItem")

// Item is one cart line.
type Item struct {
	id         kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int
	createdAt  time.Time
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a cart line for customerID holding quantity units of
// productID.
//
// Parameters:
//   - id: identifier of the new line
//   - customerID: owner of the cart
//   - productID: product placed in the cart
//   - quantity: number of units, between 1 and MaxQuantity inclusive
//   - now: creation time, also used as the update time
//
// Returns:
//   - *Item: a constructed line
//   - error: joined validation errors for missing ids and for a quantity
//     outside the allowed range
func NewItem(id, customerID, productID kernel.UUID, quantity int, now time.Time) (*Item, error) {
	item := &Item{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		id.Validate(),
		requireID("customerId", customerID),
		requireID("productId", productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	item.id = id
	item.customerID = customerID
	item.productID = productID
	return item, nil
}

// RestoreItem rebuilds a persisted line. The stored quantity is taken as is,
// since rows written before the quantity check may hold zero.
func RestoreItem(id, customerID, productID kernel.UUID, quantity int, createdAt, updatedAt time.Time) (*Item, error) {
	item := &Item{
		id:         id,
		customerID: customerID,
		productID:  productID,
		quantity:   quantity,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}
	if err := errors.Join(id.Validate(), customerID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate returns ErrItemIsNotConstructed unless the line came from NewItem
// or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) CustomerID() kernel.UUID { return i.customerID }
func (i *Item) ProductID() kernel.UUID  { return i.productID }
func (i *Item) Quantity() int           { return i.quantity }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }

// BelongsTo reports whether the line is in customerID's cart.
func (i *Item) BelongsTo(customerID kernel.UUID) bool {
	return i.customerID.IsEqual(customerID)
}

// EnsureOwnedBy returns a ForbiddenError when the line belongs to another
// customer.
func (i *Item) EnsureOwnedBy(customerID kernel.UUID) error {
	if !i.BelongsTo(customerID) {
		return errs.NewForbiddenError("cart item", i.id.String())
	}
	return nil
}

// Increase adds qty units to the line.
func (i *Item) Increase(qty int, now time.Time) error {
	if qty < 1 || qty > MaxQuantity-i.quantity {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, MaxQuantity-i.quantity)
	}
	if err := i.setQuantity(i.quantity + qty); err != nil {
		return err
	}
	i.updatedAt = now
	return nil
}

// SetQuantity replaces the quantity of the line.
func (i *Item) SetQuantity(qty int, now time.Time) error {
	if err := i.setQuantity(qty); err != nil {
		return err
	}
	i.updatedAt = now
	return nil
}

// Subtotal prices the line at unitPrice. Lines with a zero quantity, which
// only exist in rows written before the quantity check, cost nothing.
func (i *Item) Subtotal(unitPrice kernel.Money) kernel.Money {
	if i.quantity <= 0 {
		return kernel.ZeroYen
	}
	total, _ := unitPrice.Multiply(i.quantity)
	return total
}

func (i *Item) setQuantity(qty int) error {
	if qty < 1 || qty > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, MaxQuantity)
	}
	i.quantity = qty
	return nil
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
