package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"matching-srv/config"
	configKafka "matching-srv/config/kafka"
	configMinIO "matching-srv/config/minio"
	configPostgre "matching-srv/config/postgre"
	configRabbitMQ "matching-srv/config/rabbitmq"
	configRedis "matching-srv/config/redis"
	configSQLite "matching-srv/config/sqlite"
	"matching-srv/internal/consumer"
	"matching-srv/pkg/discord"
	"matching-srv/pkg/log"
	"matching-srv/pkg/minio"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"
	pkgRedis "matching-srv/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Matching Consumer Service...")

	if !cfg.Kafka.Enabled {
		logger.Error(ctx, "kafka.enabled is false; the consumer has nothing to consume")
		return
	}

	// Kafka consumer group (campaign events)
	kafkaGroup, err := configKafka.ConnectConsumer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka consumer: %v", err)
		return
	}
	defer configKafka.DisconnectConsumer()
	logger.Infof(ctx, "Kafka consumer group %s initialized", cfg.Kafka.ConsumerGroup)

	// Kafka producer (match results)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Storage
	var db *sql.DB
	if cfg.Storage.Driver == config.StorageDriverSQLite {
		db, err = configSQLite.Connect(ctx, cfg.Storage)
		defer configSQLite.Disconnect()
	} else {
		db, err = configPostgre.Connect(ctx, cfg.Postgres)
		defer configPostgre.Disconnect()
	}
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to %s storage: %v", cfg.Storage.Driver, err)
		return
	}
	logger.Infof(ctx, "Storage connected (%s)", cfg.Storage.Driver)

	// Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Info(ctx, "Redis client initialized")
	}

	// RabbitMQ (optional)
	var rabbitConn pkgRabbitMQ.IRabbitMQ
	if cfg.RabbitMQ.Enabled {
		rabbitConn, err = configRabbitMQ.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
			return
		}
		defer configRabbitMQ.Disconnect()
		logger.Info(ctx, "RabbitMQ connection initialized")
	}

	// MinIO (optional)
	var minioClient minio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinIO.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		logger.Info(ctx, "MinIO client initialized")
	}

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		DB:            db,
		StorageDriver: cfg.Storage.Driver,
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaGroup:    kafkaGroup,
		KafkaProducer: kafkaProducer,
		RabbitMQ:      rabbitConn,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
