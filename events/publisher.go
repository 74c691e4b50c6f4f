package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends booking events. Errors are returned unlogged; a failed
// publish never undoes a stored booking.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmedEvent) error {
	return nil
}

// NewPublisher returns a RabbitMQ publisher, or a NopPublisher when url is empty.
func NewPublisher(url string, log *zap.Logger) Publisher {
	if url == "" {
		return NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RabbitPublisher{URL: url, Queue: BookingConfirmedQueue, Log: log}
}

// RabbitPublisher opens a fresh connection and channel for every event.
type RabbitPublisher struct {
	URL   string
	Queue string
	Log   *zap.Logger
}

func (p *RabbitPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq declare %s: %w", p.Queue, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.Queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	p.Log.Debug("booking event published", zap.String("queue", p.Queue), zap.String("event_id", event.EventID))
	return nil
}
