// Package events publishes committed domain events to Kafka, or to the log
// when no broker is configured.
package events

import (
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// EventVersion is bumped whenever a payload changes incompatibly.
const EventVersion = "1"

// Envelope is the wire format of every published event.
type Envelope struct {
	EventType    string    `json:"eventType"`
	EventVersion string    `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
	AggregateID  string    `json:"aggregateId"`
	Data         any       `json:"data"`
}

type orderCreatedData struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	CustomerID  string `json:"customerId"`
	TotalAmount int64  `json:"totalAmount"`
	ItemCount   int    `json:"itemCount"`
}

type orderStatusChangedData struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	CustomerID  string `json:"customerId"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// NewEnvelope wraps a domain event. Known order events get a stable JSON
// payload; anything else is marshaled as is.
func NewEnvelope(event kernel.DomainEvent) Envelope {
	env := Envelope{
		EventType:    event.EventType(),
		EventVersion: EventVersion,
		OccurredAt:   event.OccurredAt().UTC(),
		AggregateID:  event.AggregateID().String(),
		Data:         event,
	}

	switch e := event.(type) {
	case order.CreatedEvent:
		env.Data = orderCreatedData{
			OrderID:     e.OrderID.String(),
			OrderNumber: e.OrderNumber.String(),
			CustomerID:  e.CustomerID.String(),
			TotalAmount: e.TotalAmount.Yen(),
			ItemCount:   e.ItemCount,
		}
	case order.StatusChangedEvent:
		env.Data = orderStatusChangedData{
			OrderID:     e.OrderID.String(),
			OrderNumber: e.OrderNumber.String(),
			CustomerID:  e.CustomerID.String(),
			From:        e.From.String(),
			To:          e.To.String(),
		}
	}
	return env
}

func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
