// Package kafkanotify publishes parcel lifecycle events to Kafka so
// downstream consumers (notifications, analytics) can react to parcel
// creation and status changes.
package kafkanotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"

	"github.com/segmentio/kafka-go"
)

const (
	eventParcelCreated       = "parcel.created"
	eventParcelStatusChanged = "parcel.status_changed"
)

// messageWriter abstracts kafka.Writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// parcelEvent is the wire format of a published lifecycle event.
// Messages are keyed by tracking number so events for one parcel stay
// ordered within a partition.
type parcelEvent struct {
	Event          string    `json:"event"`
	ParcelID       string    `json:"parcelId"`
	TrackingNumber string    `json:"trackingNumber"`
	OwnerID        string    `json:"ownerId"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Publisher sends parcel events to a single Kafka topic.
type Publisher struct {
	writer messageWriter
	topic  string
}

// NewPublisher creates a publisher writing to topic via the given brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisherWithWriter(&kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}, topic)
}

func newPublisherWithWriter(writer messageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}

// PublishParcelCreated emits a parcel.created event.
func (p *Publisher) PublishParcelCreated(ctx context.Context, aggregate *parcel.Parcel) error {
	return p.publish(ctx, eventParcelCreated, aggregate)
}

// PublishParcelStatusChanged emits a parcel.status_changed event.
func (p *Publisher) PublishParcelStatusChanged(ctx context.Context, aggregate *parcel.Parcel) error {
	return p.publish(ctx, eventParcelStatusChanged, aggregate)
}

func (p *Publisher) publish(ctx context.Context, event string, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(parcelEvent{
		Event:          event,
		ParcelID:       aggregate.ID().String(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		OwnerID:        aggregate.OwnerID().String(),
		Status:         aggregate.Status().String(),
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal parcel event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(aggregate.TrackingNumber().String()),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// NoopPublisher is used when no Kafka host is configured. Events are
// silently dropped.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards all events.
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishParcelCreated(context.Context, *parcel.Parcel) error {
	return nil
}

func (NoopPublisher) PublishParcelStatusChanged(context.Context, *parcel.Parcel) error {
	return nil
}
