package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"freshcart/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "orders_topic"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	logger   *slog.Logger
}

// DialAMQPPublisher connects to the broker and declares the durable topic
// exchange.
func DialAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	p, err := NewAMQPPublisher(ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewAMQPPublisher declares the exchange on an already opened channel.
func NewAMQPPublisher(ch Channel, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // args
	); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "amqp_publisher"),
	}, nil
}

// Publish sends every event in order and stops at the first failure.
func (p *AMQPPublisher) Publish(ctx context.Context, events []order.StatusChanged) error {
	for _, e := range events {
		body, err := json.Marshal(newStatusUpdateMessage(e))
		if err != nil {
			return fmt.Errorf("marshal status update: %w", err)
		}

		key := routingKey(e)
		err = p.ch.PublishWithContext(
			ctx,
			p.exchange,
			key,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Body:         body,
				DeliveryMode: amqp.Persistent,
				MessageId:    e.OrderID.String() + ":" + e.To.String(),
				Timestamp:    e.At,
			},
		)
		if err != nil {
			return fmt.Errorf("publish status update for order %s: %w", e.OrderID, err)
		}

		p.logger.DebugContext(ctx, "status update published",
			"order_id", e.OrderID.String(),
			"routing_key", key,
		)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
