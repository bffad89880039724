package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
)

type EventConsumer struct {
	client   pulsar.Client
	consumer pulsar.Consumer
}

// NewEventConsumer initializes the Pulsar client and consumer.
func NewEventConsumer(pulsarURL, topic, subscription string) (*EventConsumer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{URL: pulsarURL})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	consumer, err := client.Subscribe(pulsar.ConsumerOptions{
		Topic:            topic,
		SubscriptionName: subscription,
		Type:             pulsar.Shared,
		DLQ: &pulsar.DLQPolicy{
			MaxDeliveries:   3,
			DeadLetterTopic: topic + "-dlq",
		},
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar consumer: %w", err)
	}

	return &EventConsumer{client: client, consumer: consumer}, nil
}

// ReceiveRegistration retrieves the next message from Pulsar and
// decodes it as a registration event. The raw message is returned so
// the caller can ack or nack after processing.
func (c *EventConsumer) ReceiveRegistration(ctx context.Context) (RegistrationEvent, pulsar.Message, error) {
	var event RegistrationEvent

	msg, err := c.consumer.Receive(ctx)
	if err != nil {
		return event, nil, fmt.Errorf("failed to receive message: %w", err)
	}

	if err := json.Unmarshal(msg.Payload(), &event); err != nil {
		return event, msg, fmt.Errorf("failed to decode registration event: %w", err)
	}

	return event, msg, nil
}

// Ack acknowledges a message.
func (c *EventConsumer) Ack(msg pulsar.Message) {
	c.consumer.Ack(msg)
}

// Nack negatively acknowledges a message.
func (c *EventConsumer) Nack(msg pulsar.Message) {
	c.consumer.Nack(msg)
}

// Close cleans up the Pulsar consumer and client.
func (c *EventConsumer) Close() {
	c.consumer.Close()
	c.client.Close()
}
