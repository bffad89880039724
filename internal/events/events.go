package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
)

// RegistrationEvent is published after a profile has been saved. The
// consume worker picks it up to send the welcome email.
type RegistrationEvent struct {
	CorrelationID string `json:"correlationId"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	FirstName     string `json:"firstName"`
	Timestamp     int64  `json:"timestamp"`
}

// Notifier is the publishing interface handlers depend on.
type Notifier interface {
	Publish(ctx context.Context, event RegistrationEvent) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{client: client, producer: producer}, nil
}

// Publish sends a registration event to Pulsar.
func (p *EventPublisher) Publish(ctx context.Context, event RegistrationEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	return nil
}

// Close cleans up the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}
