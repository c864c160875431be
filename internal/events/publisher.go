package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "woodpantry.topic"
	RoutingKey   = "dictionary.looked_up"
)

// OutcomeOK marks a lookup that returned a definition. Failed lookups carry
// the failure kind instead.
const OutcomeOK = "ok"

// LookupEvent is the dictionary.looked_up payload.
type LookupEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Word      string    `json:"word"`
	Outcome   string    `json:"outcome"`
	Status    int       `json:"status,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// NewLookupEvent stamps a fresh event ID and the current UTC time.
func NewLookupEvent(word, outcome string, status int) LookupEvent {
	return LookupEvent{
		EventID:   uuid.New(),
		Word:      word,
		Outcome:   outcome,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// LookupPublisher publishes dictionary.looked_up events.
type LookupPublisher struct {
	conn *amqp.Connection
}

// NewLookupPublisher creates a RabbitMQ publisher and ensures the shared
// topic exchange exists.
func NewLookupPublisher(rabbitmqURL string) (*LookupPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", ExchangeName, err)
	}

	return &LookupPublisher{conn: conn}, nil
}

func (p *LookupPublisher) PublishLookup(ctx context.Context, event LookupEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", RoutingKey, err)
	}

	if err := ch.PublishWithContext(ctx, ExchangeName, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", RoutingKey, err)
	}

	return nil
}

// Close closes the RabbitMQ connection.
func (p *LookupPublisher) Close() error {
	return p.conn.Close()
}
