package consumer

import (
	"fmt"

	"matching-srv/config"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		config:        cfg.Config,
		db:            cfg.DB,
		storageDriver: cfg.StorageDriver,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaGroup:    cfg.KafkaGroup,
		kafkaProducer: cfg.KafkaProducer,
		rabbitMQ:      cfg.RabbitMQ,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}

	// Storage
	if srv.db == nil {
		return fmt.Errorf("db is required")
	}
	switch srv.storageDriver {
	case config.StorageDriverPostgres, config.StorageDriverSQLite:
	default:
		return fmt.Errorf("storage driver must be postgres or sqlite")
	}

	// Messaging
	if srv.kafkaGroup == nil {
		return fmt.Errorf("kafka consumer group is required")
	}

	return nil
}
