package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// KafkaVersion is the protocol version negotiated with the brokers.
var KafkaVersion = sarama.V2_6_0_0

const (
	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3

	// The offset is marked only after a full recompute finishes.
	ConsumerSessionTimeout    = 30 * time.Second
	ConsumerHeartbeatInterval = 3 * time.Second
)
