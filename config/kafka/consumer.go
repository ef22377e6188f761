package kafka

import (
	"fmt"
	"sync"

	"matching-srv/config"
	"matching-srv/pkg/kafka"
)

var (
	consumerInstance kafka.IConsumer
	consumerMu       sync.RWMutex
)

// ConnectConsumer joins the campaign event consumer group, or returns the existing member.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance != nil {
		return consumerInstance, nil
	}
	if cfg.ConsumerGroup == "" {
		return nil, fmt.Errorf("kafka.consumer_group is required for Kafka consumer")
	}

	c, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.ConsumerGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka consumer: %w", err)
	}
	consumerInstance = c
	return consumerInstance, nil
}

// DisconnectConsumer closes the Kafka consumer.
func DisconnectConsumer() error {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance == nil {
		return nil
	}
	err := consumerInstance.Close()
	consumerInstance = nil
	return err
}
