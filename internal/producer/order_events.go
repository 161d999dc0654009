package producer

import (
	"context"
	"encoding/json"
	"time"

	"chatorder-service/internal/service"

	"github.com/segmentio/kafka-go"
)

// OrderEventProducer publishes order lifecycle events to a single topic,
// keyed by order id so one order's events stay in partition order.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

const (
	eventOrderPlaced    = "order.placed"
	eventOrderCancelled = "order.cancelled"
	eventOrderScheduled = "order.scheduled"
	eventOrderPaid      = "order.paid"
)

func (p *OrderEventProducer) publish(ctx context.Context, eventType, key string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(eventType)},
		},
	})
}

func (p *OrderEventProducer) PublishOrderPlaced(ctx context.Context, e service.OrderPlacedEvent) error {
	return p.publish(ctx, eventOrderPlaced, e.OrderID.String(), e)
}

func (p *OrderEventProducer) PublishOrderCancelled(ctx context.Context, e service.OrderCancelledEvent) error {
	return p.publish(ctx, eventOrderCancelled, e.OrderID.String(), e)
}

func (p *OrderEventProducer) PublishOrderScheduled(ctx context.Context, e service.OrderScheduledEvent) error {
	return p.publish(ctx, eventOrderScheduled, e.OrderID.String(), e)
}

func (p *OrderEventProducer) PublishOrderPaid(ctx context.Context, e service.OrderPaidEvent) error {
	return p.publish(ctx, eventOrderPaid, e.OrderID.String(), e)
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
