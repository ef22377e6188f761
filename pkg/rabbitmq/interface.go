package rabbitmq

import (
	"context"

	"matching-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IRabbitMQ is a self-healing AMQP connection.
// Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Channel() (IChannel, error)
	IsReady() bool
	Close()
}

// IChannel is an AMQP channel that is recreated after the connection recovers.
// Implementations are safe for concurrent use.
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	QueueDeclare(queue QueueArgs) (amqp.Queue, error)
	QueueBind(queueBind QueueBindArgs) error
	Publish(ctx context.Context, publish PublishArgs) error
	Close() error
}

// New dials url, retrying until RetryConnectionTimeout elapses. When the
// connection later drops it is re-dialled in the background.
func New(l log.Logger, url string) (IRabbitMQ, error) {
	conn := &connectionImpl{l: l, url: url}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
