package consumer

import (
	"context"
	"fmt"
	"time"

	"matching-srv/internal/matching"
	pkgKafka "matching-srv/pkg/kafka"
	"matching-srv/pkg/log"
)

// Consumer reacts to campaign lifecycle events.
type Consumer interface {
	ConsumeCampaignEvents(ctx context.Context) error
	Close() error
}

// Config holds the dependencies of the matching consumer.
type Config struct {
	Logger  log.Logger
	Group   pkgKafka.IConsumer
	Topic   string
	UseCase matching.UseCase
}

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = time.Second
)

type consumer struct {
	l     log.Logger
	group pkgKafka.IConsumer
	topic string
	uc    matching.UseCase

	retryAttempts int
	retryBackoff  time.Duration
}

// New creates a new matching consumer.
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Group == nil {
		return nil, fmt.Errorf("kafka consumer group is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("campaign topic is required")
	}

	return &consumer{
		l:     cfg.Logger,
		group: cfg.Group,
		topic: cfg.Topic,
		uc:    cfg.UseCase,

		retryAttempts: defaultRetryAttempts,
		retryBackoff:  defaultRetryBackoff,
	}, nil
}

func (c *consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close campaign events group: %w", err)
	}
	return nil
}
