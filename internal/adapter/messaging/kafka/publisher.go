package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asharkov-briklabs/refunds-service/config"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer wraps the kafka.Writer methods the publisher needs, for testing.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// partitionKeyed is implemented by event payloads that pin their messages to
// a partition. Events for one refund stay ordered on one partition.
type partitionKeyed interface {
	PartitionKey() string
}

// EventPublisher implements ports.EventPublisher on a Kafka topic.
type EventPublisher struct {
	writer Writer
	topic  string
	log    zerolog.Logger
}

// eventEnvelope is the wire shape of a published event.
type eventEnvelope struct {
	EventType   string          `json:"event_type"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"published_at"`
}

// NewEventPublisher creates a publisher writing to the configured events
// topic.
func NewEventPublisher(cfg config.KafkaConfig, log zerolog.Logger) *EventPublisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &EventPublisher{writer: writer, topic: cfg.EventsTopic, log: log}
}

// NewEventPublisherWithWriter creates a publisher over an existing writer.
func NewEventPublisherWithWriter(writer Writer, topic string, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{writer: writer, topic: topic, log: log}
}

// Publish serializes the payload and writes one message. The message key is
// the payload's partition key when it provides one.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	value, err := json.Marshal(eventEnvelope{
		EventType:   eventType,
		Payload:     body,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	msg := kafkago.Message{Value: value}
	if keyed, ok := payload.(partitionKeyed); ok {
		msg.Key = []byte(keyed.PartitionKey())
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish event to %s: %w", p.topic, err)
	}

	p.log.Debug().
		Str("topic", p.topic).
		Str("event_type", eventType).
		Msg("event published")
	return nil
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer for %s: %w", p.topic, err)
	}
	return nil
}
