package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// BookingConfirmedEvent is emitted once per booking after its payment is
// verified and recorded.
type BookingConfirmedEvent struct {
	BookingID        string          `json:"booking_id"`
	TourRef          string          `json:"tour_ref"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currency_code"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference"`
	ConfirmedAt      time.Time       `json:"confirmed_at"`
}

// Publisher emits booking lifecycle events to downstream consumers
// (fulfilment mails, analytics).
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher against the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishBookingConfirmed emits a confirmation event keyed by booking ID.
func (k *KafkaPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BookingID),
		Value: msg,
		Time:  time.Now(),
	})
}

// Close flushes and closes the underlying writer.
func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher is used when no brokers are configured; confirmations still
// succeed, events are simply dropped.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
