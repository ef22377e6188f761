package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matching-srv/config"
	configKafka "matching-srv/config/kafka"
	configMinIO "matching-srv/config/minio"
	configPostgre "matching-srv/config/postgre"
	configRabbitMQ "matching-srv/config/rabbitmq"
	configRedis "matching-srv/config/redis"
	configSQLite "matching-srv/config/sqlite"
	_ "matching-srv/docs" // Import swagger docs
	"matching-srv/internal/httpserver"
	"matching-srv/pkg/discord"
	"matching-srv/pkg/encrypter"
	pkgJWT "matching-srv/pkg/jwt"
	pkgKafka "matching-srv/pkg/kafka"
	"matching-srv/pkg/log"
	"matching-srv/pkg/minio"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"
	pkgRedis "matching-srv/pkg/redis"
)

// @title       ME-IN Matching Service API
// @description Ranks influencers for brand campaigns and campaigns for influencers.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name mein_auth_token
// @description Access token issued by the identity service.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize encrypter
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}

	// 5. Initialize storage
	db, err := connectStorage(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to %s storage: %v", cfg.Storage.Driver, err)
		return
	}
	defer disconnectStorage(logger, cfg.Storage.Driver)
	logger.Infof(ctx, "Storage connected (%s)", cfg.Storage.Driver)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 8. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized (topic %s)", cfg.Kafka.ResultTopic)
	}

	// 9. Initialize RabbitMQ (optional)
	var rabbitConn pkgRabbitMQ.IRabbitMQ
	if cfg.RabbitMQ.Enabled {
		rabbitConn, err = configRabbitMQ.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
			return
		}
		defer configRabbitMQ.Disconnect()
		logger.Info(ctx, "RabbitMQ connected")
	}

	// 10. Initialize MinIO (optional)
	var minioClient minio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinIO.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		logger.Infof(ctx, "MinIO connected (bucket %s)", cfg.MinIO.Bucket)
	}

	// 11. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 12. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Storage Configuration
		DB:            db,
		StorageDriver: cfg.Storage.Driver,
		RedisClient:   redisClient,
		MinIOClient:   minioClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,
		RabbitMQ:      rabbitConn,

		// Authentication & Security Configuration
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}

func connectStorage(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Storage.Driver == config.StorageDriverSQLite {
		return configSQLite.Connect(ctx, cfg.Storage)
	}
	return configPostgre.Connect(ctx, cfg.Postgres)
}

func disconnectStorage(logger log.Logger, driver string) {
	disconnect := configPostgre.Disconnect
	if driver == config.StorageDriverSQLite {
		disconnect = configSQLite.Disconnect
	}
	if err := disconnect(); err != nil {
		logger.Errorf(context.Background(), "Failed to close %s storage: %v", driver, err)
	}
}
