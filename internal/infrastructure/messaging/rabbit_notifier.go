package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the notifier publishes through.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitNotifier publishes booking notifications to a topic exchange.
type RabbitNotifier struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	log      logger.Logger
}

var _ interfaces.INotifier = (*RabbitNotifier)(nil)

func NewRabbitNotifier(url, exchange string, log logger.Logger) (*RabbitNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitNotifier{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

func (n *RabbitNotifier) Notify(ctx context.Context, routingKey string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	// amqp channels are not safe for concurrent publishing.
	n.mu.Lock()
	defer n.mu.Unlock()
	err = n.ch.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
	if err != nil {
		n.log.Warn("[notify][rabbit] publish failed", "routing_key", routingKey, "error", err)
		return err
	}
	n.log.Debug("[notify][rabbit] published", "routing_key", routingKey, "bytes", len(b))
	return nil
}

func (n *RabbitNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
