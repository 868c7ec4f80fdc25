package order

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem or RestoreItem")

// Item is a line of an order. Name and unit price are copied from the
// product when the order is placed and never follow later product edits.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	subtotal    kernel.Money

	guard guard.ConstructorGuard
}

func NewItem(id, productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		item.setName(productName),
	); err != nil {
		return Item{}, err
	}
	subtotal, err := unitPrice.Multiply(quantity)
	if err != nil {
		return Item{}, err
	}
	item.id = id
	item.productID = productID
	item.unitPrice = unitPrice
	item.quantity = quantity
	item.subtotal = subtotal
	return item, nil
}

// RestoreItem rebuilds a persisted line. The stored subtotal is kept as is.
func RestoreItem(id, productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int, subtotal kernel.Money) (Item, error) {
	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	item := Item{
		id:        id,
		productID: productID,
		unitPrice: unitPrice,
		quantity:  quantity,
		subtotal:  subtotal,
		guard:     guard.NewConstructorGuard(),
	}
	if err := errors.Join(id.Validate(), productID.Validate(), item.setName(productName)); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID         { return i.id }
func (i Item) ProductID() kernel.UUID  { return i.productID }
func (i Item) ProductName() string     { return i.productName }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) Subtotal() kernel.Money  { return i.subtotal }

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}
