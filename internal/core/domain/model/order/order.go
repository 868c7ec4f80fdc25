package order

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrOrderHasNoItems       = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - at least one item, and totalAmount equals the sum of item subtotals
//     when the order is placed
//   - status changes only along the transition table of Status
//   - completedAt is set if and only if the order reached completed
type Order struct {
	id            kernel.UUID
	number        Number
	customerID    kernel.UUID
	status        Status
	totalAmount   kernel.Money
	paymentStatus PaymentStatus
	paymentMethod string
	items         []Item
	createdAt     time.Time
	updatedAt     time.Time
	completedAt   *time.Time

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder places an order in pending status with payment pending and
// records an order.created event.
func NewOrder(id kernel.UUID, number Number, customerID kernel.UUID, items []Item, now time.Time) (*Order, error) {
	o := &Order{
		number:        number,
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setNumber(number),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroYen
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total

	o.record(CreatedEvent{
		OrderID:     o.id,
		OrderNumber: o.number,
		CustomerID:  o.customerID,
		TotalAmount: o.totalAmount,
		ItemCount:   len(o.items),
		At:          now,
	})
	return o, nil
}

// RestoreOrder rebuilds a persisted order without recording events.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	paymentStatus PaymentStatus,
	paymentMethod string,
	items []Item,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o := &Order{
		number:        number,
		status:        status,
		totalAmount:   totalAmount,
		paymentStatus: paymentStatus,
		paymentMethod: strings.TrimSpace(paymentMethod),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		completedAt:   completedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setNumber(number),
		status.Validate(),
		paymentStatus.Validate(),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for nil orders and orders not
// built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Number() Number               { return o.number }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) TotalAmount() kernel.Money    { return o.totalAmount }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) PaymentMethod() string        { return o.paymentMethod }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
func (o *Order) CompletedAt() *time.Time      { return o.completedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// BelongsTo reports whether the order was placed by customerID.
func (o *Order) BelongsTo(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// ChangeStatus moves the order to target. Entering completed stamps
// completedAt.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = next
	o.updatedAt = now
	if next == Completed {
		at := now
		o.completedAt = &at
	}

	o.record(StatusChangedEvent{
		OrderID:     o.id,
		OrderNumber: o.number,
		CustomerID:  o.customerID,
		From:        from,
		To:          next,
		At:          now,
	})
	return nil
}

// Advance moves the order to the next status of the normal flow.
func (o *Order) Advance(now time.Time) error {
	next, ok := o.status.Next()
	if !ok {
		return errs.NewValueIsInvalidError("status " + o.status.String() + " has no next step")
	}
	return o.ChangeStatus(next, now)
}

// UpdatePayment sets the payment status. An empty method clears the stored
// payment method.
func (o *Order) UpdatePayment(status PaymentStatus, method string, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	o.paymentMethod = strings.TrimSpace(method)
	o.updatedAt = now
	return nil
}

// DomainEvents returns the events recorded since the last clear.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return o.events
}

// ClearDomainEvents drops recorded events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setNumber(n Number) error {
	if _, err := ParseNumber(string(n)); err != nil {
		return err
	}
	o.number = n
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
