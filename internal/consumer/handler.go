package consumer

import (
	"context"
	"fmt"

	"matching-srv/config"
	"matching-srv/internal/matching"
	matchingConsumer "matching-srv/internal/matching/delivery/kafka/consumer"
	matchingProducer "matching-srv/internal/matching/delivery/kafka/producer"
	matchingRabbitMQ "matching-srv/internal/matching/delivery/rabbitmq"
	"matching-srv/internal/matching/repository"
	matchingPostgre "matching-srv/internal/matching/repository/postgre"
	matchingRedis "matching-srv/internal/matching/repository/redis"
	matchingSQLite "matching-srv/internal/matching/repository/sqlite"
	matchingUsecase "matching-srv/internal/matching/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	matchingUC       matching.UseCase
	matchingConsumer matchingConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	var repo repository.Repository
	if srv.storageDriver == config.StorageDriverSQLite {
		repo = matchingSQLite.New(srv.db, srv.l)
	} else {
		repo = matchingPostgre.New(srv.db, srv.l)
	}

	deps := matchingUsecase.Dependencies{
		Repo:    repo,
		Storage: srv.minioClient,
	}
	if srv.redisClient != nil {
		deps.Cache = matchingRedis.New(srv.redisClient, srv.l)
	}
	if srv.kafkaProducer != nil {
		deps.Publisher = matchingProducer.New(srv.l, srv.kafkaProducer)
	}
	if srv.rabbitMQ != nil {
		notifier, err := matchingRabbitMQ.New(srv.l, srv.rabbitMQ, matchingRabbitMQ.Config{
			Exchange:   srv.config.RabbitMQ.Exchange,
			RoutingKey: srv.config.RabbitMQ.RoutingKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create matching notifier: %w", err)
		}
		deps.Notifier = notifier
	}

	uc := matchingUsecase.New(srv.l, deps, matchingUsecase.Config{
		CacheTTL:          srv.config.Matching.CacheTTL,
		CandidatePageSize: srv.config.Matching.CandidatePageSize,
		ExportBucket:      srv.config.MinIO.Bucket,
		ExportURLExpiry:   srv.config.Matching.ExportURLExpiry,
		RecomputeWorkers:  srv.config.Matching.RecomputeWorkers,
		NotifyTop:         srv.config.Matching.NotifyTop,
	})

	cons, err := matchingConsumer.New(matchingConsumer.Config{
		Logger:  srv.l,
		Group:   srv.kafkaGroup,
		Topic:   srv.config.Kafka.CampaignTopic,
		UseCase: uc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create matching consumer: %w", err)
	}

	srv.l.Infof(ctx, "Matching domain initialized (storage=%s)", srv.storageDriver)

	return &domainConsumers{
		matchingUC:       uc,
		matchingConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.matchingConsumer.ConsumeCampaignEvents(ctx); err != nil {
		return fmt.Errorf("failed to start matching consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.matchingConsumer != nil {
		if err := consumers.matchingConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing matching consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
