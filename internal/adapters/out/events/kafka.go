package events

import (
	"context"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each event as one message keyed by the aggregate id,
// so all events of one order land on the same partition in order.
type KafkaPublisher struct {
	w      messageWriter
	topic  string
	logger *zap.Logger
}

// NewKafkaPublisher connects to a comma separated broker list.
func NewKafkaPublisher(brokers, topic string, logger *zap.Logger) (*KafkaPublisher, error) {
	if strings.TrimSpace(brokers) == "" {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  splitBrokers(brokers),
		Balancer: &kafka.Hash{},
	})
	return newKafkaPublisher(w, topic, logger), nil
}

func newKafkaPublisher(w messageWriter, topic string, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{w: w, topic: topic, logger: logger}
}

// Publish sends all events in one batch.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		env := NewEnvelope(event)
		value, err := env.Marshal()
		if err != nil {
			return fmt.Errorf("marshal %s: %w", env.EventType, err)
		}
		msgs = append(msgs, kafka.Message{
			Topic: p.topic,
			Key:   []byte(env.AggregateID),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(env.EventType)},
				{Key: "event-version", Value: []byte(env.EventVersion)},
			},
		})
	}

	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.Debug("events published", zap.String("topic", p.topic), zap.Int("count", len(msgs)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

func splitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, b := range parts {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
