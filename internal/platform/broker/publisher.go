package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"vantraResto/internal/modules/reservations/domain"
)

// envelope is the wire shape integrations consume. Topic inside the payload
// is the logical topic ("reservation.created"); the Kafka topic itself is a
// single configured stream.
type envelope struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId"`
	Topic      string    `json:"topic"`
	Data       any       `json:"data"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher writes reservation lifecycle events to Kafka so systems outside
// this process (CRM, analytics) can follow the board without polling it.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns nil when no brokers are configured; the process runs
// fine without Kafka and callers treat a nil publisher as disabled.
func NewPublisher(brokers []string, topic string) *Publisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish encodes and writes one store event.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	msg, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Attach subscribes the publisher to the store notifier. Publish failures
// are logged, never propagated: the dashboard must keep working when Kafka
// is down.
func (p *Publisher) Attach(subscribe func(func(domain.Event)) func()) func() {
	return subscribe(func(ev domain.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Publish(ctx, ev); err != nil {
			slog.Warn("event bridge publish failed",
				slog.String("kind", string(ev.Kind)),
				slog.Int64("id", ev.Reservation.ID),
				slog.Any("error", err))
		}
	})
}

func encodeEvent(ev domain.Event) (kafka.Message, error) {
	resourceID := strconv.FormatInt(ev.Reservation.ID, 10)
	value, err := json.Marshal(envelope{
		Entity:     "reservation",
		Action:     string(ev.Kind),
		ResourceID: resourceID,
		Topic:      "reservation." + string(ev.Kind),
		Data:       ev.Reservation,
		Timestamp:  ev.At.UTC(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event: %w", err)
	}
	return kafka.Message{Key: []byte(resourceID), Value: value}, nil
}
