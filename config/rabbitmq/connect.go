package rabbitmq

import (
	"fmt"
	"sync"

	"matching-srv/config"
	"matching-srv/pkg/log"
	"matching-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	mu       sync.RWMutex
)

// Connect dials RabbitMQ, or returns the existing connection.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	conn, err := rabbitmq.New(l, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	instance = conn
	return instance, nil
}

// HealthCheck reports whether the connection is currently usable.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("RabbitMQ connection not initialized")
	}
	if !instance.IsReady() {
		return fmt.Errorf("RabbitMQ connection is reconnecting")
	}
	return nil
}

// Disconnect closes the connection.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
	}
}
