package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

const (
	EventTypeCreated       = "order.created"
	EventTypeStatusChanged = "order.status_changed"
)

// CreatedEvent is recorded when checkout produces a new order.
type CreatedEvent struct {
	OrderID     kernel.UUID
	OrderNumber Number
	CustomerID  kernel.UUID
	TotalAmount kernel.Money
	ItemCount   int
	At          time.Time
}

func (e CreatedEvent) EventType() string        { return EventTypeCreated }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

// StatusChangedEvent is recorded on every accepted status transition.
type StatusChangedEvent struct {
	OrderID     kernel.UUID
	OrderNumber Number
	CustomerID  kernel.UUID
	From        Status
	To          Status
	At          time.Time
}

func (e StatusChangedEvent) EventType() string        { return EventTypeStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }
