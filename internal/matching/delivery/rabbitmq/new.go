package rabbitmq

import (
	"fmt"

	"matching-srv/internal/matching"
	"matching-srv/pkg/log"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"
)

type Config struct {
	Exchange   string
	RoutingKey string
}

type implNotifier struct {
	l          log.Logger
	ch         pkgRabbitMQ.IChannel
	exchange   string
	routingKey string
}

// New opens a channel on conn and declares the notification exchange.
func New(l log.Logger, conn pkgRabbitMQ.IRabbitMQ, cfg Config) (matching.Notifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(pkgRabbitMQ.ExchangeArgs{
		Name:    cfg.Exchange,
		Type:    pkgRabbitMQ.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &implNotifier{
		l:          l,
		ch:         ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}, nil
}
