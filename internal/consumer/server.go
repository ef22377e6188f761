package consumer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"matching-srv/config"
	"matching-srv/pkg/discord"
	pkgKafka "matching-srv/pkg/kafka"
	"matching-srv/pkg/log"
	"matching-srv/pkg/minio"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"
	"matching-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Storage
	db            *sql.DB
	storageDriver string
	redisClient   redis.IRedis
	minioClient   minio.MinIO

	// Messaging
	kafkaGroup    pkgKafka.IConsumer
	kafkaProducer pkgKafka.IProducer
	rabbitMQ      pkgRabbitMQ.IRabbitMQ

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Storage
	DB            *sql.DB
	StorageDriver string
	RedisClient   redis.IRedis // optional
	MinIOClient   minio.MinIO  // optional

	// Messaging
	KafkaGroup    pkgKafka.IConsumer
	KafkaProducer pkgKafka.IProducer    // optional
	RabbitMQ      pkgRabbitMQ.IRabbitMQ // optional

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes the matching domain, starts consumers and the periodic
// recompute, and stops them on shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.runScheduledRecompute(ctx, consumers, srv.config.Matching.RecomputeInterval)
	}()

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	<-done
	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(context.Background(), "Consumer Server stopped gracefully")
	return nil
}

// runScheduledRecompute re-ranks every open campaign on each tick so that
// influencer profile changes, which carry no event, reach persisted runs.
func (srv *ConsumerServer) runScheduledRecompute(ctx context.Context, consumers *domainConsumers, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, err := consumers.matchingUC.RecomputeOpenCampaigns(ctx)
			if err != nil {
				srv.l.Errorf(ctx, "consumer.runScheduledRecompute: %v", err)
				srv.reportBug(ctx, fmt.Sprintf("scheduled recompute failed: %v", err))
				continue
			}
			srv.l.Infof(ctx, "consumer.runScheduledRecompute: campaigns=%d succeeded=%d failed=%d", s.Campaigns, s.Succeeded, s.Failed)
			if s.Failed > 0 {
				srv.reportBug(ctx, fmt.Sprintf("scheduled recompute: %d of %d campaigns failed", s.Failed, s.Campaigns))
			}
		}
	}
}

func (srv *ConsumerServer) reportBug(ctx context.Context, msg string) {
	if srv.discord == nil {
		return
	}
	if err := srv.discord.ReportBug(ctx, msg); err != nil {
		srv.l.Warnf(ctx, "consumer.reportBug: %v", err)
	}
}
