// Package messaging publishes order lifecycle events to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roadside/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("messaging/lifecycle-publisher")

// StatusChangedMessage is the JSON value written for each transition.
type StatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Trigger    string    `json:"trigger"`
	DriverID   *string   `json:"driver_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newStatusChangedMessage(e order.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		OrderID:    e.OrderID.String(),
		From:       e.From.String(),
		To:         e.To.String(),
		Trigger:    e.Trigger.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.DriverID != nil {
		driverID := e.DriverID.String()
		msg.DriverID = &driverID
	}
	return msg
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LifecyclePublisher implements ports.EventPublisher. Messages are keyed by
// order id so one order's transitions stay ordered within a partition.
type LifecyclePublisher struct {
	writer messageWriter
	topic  string
}

func NewLifecyclePublisher(brokers []string, topic string) *LifecyclePublisher {
	return &LifecyclePublisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
			RequiredAcks:           kafka.RequireAll,
		},
	}
}

func (p *LifecyclePublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(events[0].OrderID.String()),
		),
	)
	defer span.End()

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(newStatusChangedMessage(e))
		if err != nil {
			return fmt.Errorf("encode status change of order %s: %w", e.OrderID, err)
		}

		msg := kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Time:  e.OccurredAt,
		}
		otel.GetTextMapPropagator().Inject(ctx, NewMessageCarrier(&msg))
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (p *LifecyclePublisher) Close() error {
	return p.writer.Close()
}
