package httpserver

import (
	"context"
	"database/sql"
	"fmt"

	"matching-srv/config"
	matchingHTTP "matching-srv/internal/matching/delivery/http"
	matchingProducer "matching-srv/internal/matching/delivery/kafka/producer"
	matchingRabbitMQ "matching-srv/internal/matching/delivery/rabbitmq"
	"matching-srv/internal/matching/repository"
	matchingPostgre "matching-srv/internal/matching/repository/postgre"
	matchingRedis "matching-srv/internal/matching/repository/redis"
	matchingSQLite "matching-srv/internal/matching/repository/sqlite"
	matchingUsecase "matching-srv/internal/matching/usecase"
	"matching-srv/internal/middleware"
	"matching-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// setupMatchingDomain initializes matching domain (repo -> usecase -> delivery)
func (srv *HTTPServer) setupMatchingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	deps := matchingUsecase.Dependencies{
		Repo:    newMatchingRepository(srv.storageDriver, srv.db, srv.l),
		Storage: srv.minioClient,
	}

	// Optional infrastructure
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
			return fmt.Errorf("failed to create matching notifier: %w", err)
		}
		deps.Notifier = notifier
	}

	uc := matchingUsecase.New(srv.l, deps, matchingConfig(srv.config))

	handler := matchingHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Matching domain registered (storage=%s cache=%t publisher=%t notifier=%t export=%t)",
		srv.storageDriver, deps.Cache != nil, deps.Publisher != nil, deps.Notifier != nil, deps.Storage != nil)
	return nil
}

func newMatchingRepository(driver string, db *sql.DB, l log.Logger) repository.Repository {
	if driver == config.StorageDriverSQLite {
		return matchingSQLite.New(db, l)
	}
	return matchingPostgre.New(db, l)
}

func matchingConfig(cfg *config.Config) matchingUsecase.Config {
	return matchingUsecase.Config{
		CacheTTL:          cfg.Matching.CacheTTL,
		CandidatePageSize: cfg.Matching.CandidatePageSize,
		ExportBucket:      cfg.MinIO.Bucket,
		ExportURLExpiry:   cfg.Matching.ExportURLExpiry,
		RecomputeWorkers:  cfg.Matching.RecomputeWorkers,
		NotifyTop:         cfg.Matching.NotifyTop,
	}
}
