package httpserver

import (
	"database/sql"
	"errors"

	"matching-srv/config"
	"matching-srv/pkg/discord"
	"matching-srv/pkg/encrypter"
	pkgJWT "matching-srv/pkg/jwt"
	pkgKafka "matching-srv/pkg/kafka"
	"matching-srv/pkg/log"
	"matching-srv/pkg/minio"
	pkgRabbitMQ "matching-srv/pkg/rabbitmq"
	pkgRedis "matching-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Storage Configuration
	db            *sql.DB
	storageDriver string
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO

	// Messaging Configuration
	kafkaProducer pkgKafka.IProducer
	rabbitMQ      pkgRabbitMQ.IRabbitMQ

	// Authentication & Security Configuration
	jwtManager pkgJWT.IManager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Storage Configuration
	DB            *sql.DB
	StorageDriver string
	// Optional: ranking cache
	RedisClient pkgRedis.IRedis
	// Optional: shortlist exports
	MinIOClient minio.MinIO

	// Messaging Configuration (optional)
	KafkaProducer pkgKafka.IProducer
	RabbitMQ      pkgRabbitMQ.IRabbitMQ

	// Authentication & Security Configuration
	JWTManager pkgJWT.IManager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Storage Configuration
		db:            cfg.DB,
		storageDriver: cfg.StorageDriver,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,
		rabbitMQ:      cfg.RabbitMQ,

		// Authentication & Security Configuration
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Storage Configuration
	if srv.db == nil {
		return errors.New("db is required")
	}
	switch srv.storageDriver {
	case config.StorageDriverPostgres, config.StorageDriverSQLite:
	default:
		return errors.New("storage driver must be postgres or sqlite")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	return nil
}
