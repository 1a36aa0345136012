// Package rabbitmq publishes notifications to the external notification
// service over a fanout exchange. Delivery itself (email gateways, SMS
// providers) happens in the consumers; this adapter only hands messages to
// the broker.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ezwash/internal/core/ports"
	"ezwash/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// exchangeName is the fanout exchange the notification consumers bind to.
const exchangeName = "notifications_fanout"

// notificationMessage is the wire payload one publish carries.
type notificationMessage struct {
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	SentAt    time.Time `json:"sent_at"`
}

// AmqpNotifier implements ports.Notifier over a RabbitMQ connection.
// The amqp channel is not safe for concurrent publishes, so a mutex
// serializes them.
type AmqpNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// NewAmqpNotifier dials the broker and declares the notification exchange.
func NewAmqpNotifier(url string) (*AmqpNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause("rabbitmq", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.NewUpstreamUnavailableErrorWithCause("rabbitmq", err)
	}

	if err = ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.NewUpstreamUnavailableErrorWithCause("rabbitmq", err)
	}

	return &AmqpNotifier{conn: conn, ch: ch}, nil
}

// Notify publishes one message per requested channel. The returned map
// reports which channels were handed to the broker; the error is non-nil
// only when every channel failed.
func (n *AmqpNotifier) Notify(
	ctx context.Context,
	recipient string,
	message string,
	channels []ports.NotificationChannel,
) (map[ports.NotificationChannel]bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	results := make(map[ports.NotificationChannel]bool, len(channels))
	var lastErr error
	published := 0

	for _, channel := range channels {
		body, err := json.Marshal(notificationMessage{
			Recipient: recipient,
			Message:   message,
			Channel:   string(channel),
			SentAt:    time.Now().UTC(),
		})
		if err != nil {
			results[channel] = false
			lastErr = err
			continue
		}

		err = n.ch.PublishWithContext(ctx, exchangeName, string(channel), false, false,
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/json",
				Timestamp:    time.Now().UTC(),
				Body:         body,
			})
		if err != nil {
			results[channel] = false
			lastErr = err
			continue
		}

		results[channel] = true
		published++
	}

	if published == 0 && lastErr != nil {
		return results, errs.NewUpstreamUnavailableErrorWithCause("rabbitmq",
			fmt.Errorf("publish to %q: %w", exchangeName, lastErr))
	}

	return results, nil
}

// Close releases the channel and the connection.
func (n *AmqpNotifier) Close() {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}
