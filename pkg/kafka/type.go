package kafka

import (
	"sync"

	"github.com/IBM/sarama"
)

// Config holds configuration for a Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for a Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
	// OldestOffset starts a new group from the beginning of the topic.
	OldestOffset bool
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type consumerImpl struct {
	group sarama.ConsumerGroup

	closeOnce sync.Once
	closeErr  error
}
