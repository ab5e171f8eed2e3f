package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event types published by the booking core.
const (
	TypeBookingCreated        = "booking_created"
	TypeCancellationRequested = "cancellation_requested"
	TypeCancellationApproved  = "cancellation_approved"
	TypeCancellationRejected  = "cancellation_rejected"
	TypeFlightUpdated         = "flight_updated"
	TypeFlightDeleted         = "flight_deleted"
)

type Event struct {
	Type    string    `json:"type"`
	Key     string    `json:"key"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Producer publishes domain events to kafka. A nil *Producer is valid and
// drops everything, so the service runs without a broker.
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *zap.Logger
}

func NewProducer(brokers []string, topic string, log *zap.Logger) *Producer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
		log:    log.With(zap.String("component", "events")),
	}
}

func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) error {
	if p == nil {
		return nil
	}

	event := Event{
		Type:    eventType,
		Key:     key,
		Payload: payload,
		At:      time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  event.At,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.String("key", key),
		)
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.log.Debug("Event published",
		zap.String("type", eventType),
		zap.String("key", key),
	)
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
