package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

// Publisher hands messages to durable queues with at-least-once intent. Each
// publish runs on its own channel over the shared connection, so concurrent
// requests never contend on channel state.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, timeout time.Duration) *Publisher {
	return &Publisher{
		client:  client,
		timeout: timeout,
	}
}

// Publish declares queue durable, encodes message as JSON and publishes it
// persistent to the default exchange with the queue name as routing key,
// waiting for the broker's acknowledgment. An error before the ack means the
// broker may not own the message and the caller may retry; duplicates are an
// accepted tradeoff for downstream consumers.
func (p *Publisher) Publish(ctx context.Context, queue string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return &domain.PublishError{Queue: queue, Err: fmt.Errorf("%w: %v", domain.ErrSerialization, err)}
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ch, err := p.client.Channel(ctx)
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Confirm(false); err != nil {
		return &domain.ConnectionError{Op: "confirm", Err: err}
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	closed := ch.NotifyClose(make(chan *amqp.Error, 1))

	if err := declareQueue(ch, queue); err != nil {
		return err
	}

	err = ch.PublishWithContext(
		ctx,
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return &domain.PublishError{Queue: queue, Err: err}
	}

	select {
	case confirmation := <-confirms:
		if !confirmation.Ack {
			return &domain.PublishError{Queue: queue, Err: domain.ErrBrokerRejected}
		}
	case closeErr := <-closed:
		return &domain.PublishError{Queue: queue, Err: fmt.Errorf("%w: %v", domain.ErrChannelClosed, closeErr)}
	case <-ctx.Done():
		return &domain.PublishError{Queue: queue, Err: ctx.Err()}
	}

	log.WithField("queue", queue).Debug("Message published and confirmed")
	return nil
}
