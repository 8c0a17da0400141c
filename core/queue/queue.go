package queue

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrClosed is returned by Consume when the broker closes the delivery stream.
var ErrClosed = errors.New("queue: delivery channel closed")

// Publisher publishes messages to the batch queue.
type Publisher interface {
	Publish(ctx context.Context, messageID string, body []byte) error
}

// Handler processes one message. A returned error rejects the message
// without requeueing it.
type Handler func(ctx context.Context, body []byte) error

// Connection is a RabbitMQ connection bound to one durable queue.
type Connection struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	prefetch int
	logger   *zap.Logger
}

// Dial connects to the broker and declares the configured queue.
func Dial(cfg Config, logger *zap.Logger) (*Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.Name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.Name, err)
	}

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}

	return &Connection{conn: conn, ch: ch, queue: q.Name, prefetch: prefetch, logger: logger}, nil
}

// Publish sends a persistent JSON message.
func (c *Connection) Publish(ctx context.Context, messageID string, body []byte) error {
	err := c.ch.PublishWithContext(ctx,
		"",
		c.queue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", c.queue, err)
	}
	return nil
}

// Consume delivers messages to h until ctx is cancelled or the broker closes
// the channel. Messages are acknowledged manually.
func (c *Connection) Consume(ctx context.Context, h Handler) error {
	if err := c.ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", c.queue, err)
	}

	c.logger.Info("Consuming queue", zap.String("queue", c.queue), zap.Int("prefetch", c.prefetch))
	return consume(ctx, msgs, h, c.logger)
}

// Close closes the channel and the connection.
func (c *Connection) Close() error {
	chErr := c.ch.Close()
	connErr := c.conn.Close()
	return errors.Join(chErr, connErr)
}

func consume(ctx context.Context, msgs <-chan amqp.Delivery, h Handler, logger *zap.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return ErrClosed
			}
			handle(ctx, d, h, logger)
		}
	}
}

func handle(ctx context.Context, d amqp.Delivery, h Handler, logger *zap.Logger) {
	l := logger.With(zap.String("message_id", d.MessageId))

	if err := h(ctx, d.Body); err != nil {
		l.Error("Message rejected", zap.Error(err))
		if nackErr := d.Nack(false, false); nackErr != nil {
			l.Error("Failed to reject message", zap.Error(nackErr))
		}
		return
	}

	if err := d.Ack(false); err != nil {
		l.Error("Failed to acknowledge message", zap.Error(err))
	}
}
