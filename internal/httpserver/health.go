package httpserver

import (
	"context"
	"net/http"

	"matching-srv/config"
	configKafka "matching-srv/config/kafka"
	configMinIO "matching-srv/config/minio"
	configPostgre "matching-srv/config/postgre"
	configRabbitMQ "matching-srv/config/rabbitmq"
	configRedis "matching-srv/config/redis"
	configSQLite "matching-srv/config/sqlite"
	"matching-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "ME-IN matching API"
	HealthVersion = "1.0.0"
	ServiceName   = "matching-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. Storage is always checked;
// Redis, Kafka, RabbitMQ and MinIO only when they are enabled.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	status := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"storage": srv.storageDriver,
	}
	for _, chk := range srv.dependencyChecks() {
		if !chk.enabled {
			status[chk.name] = "disabled"
			continue
		}
		if err := chk.check(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": chk.name + " check failed",
				"error":   err.Error(),
			})
			return
		}
		status[chk.name] = "connected"
	}

	response.OK(c, status)
}

type dependencyCheck struct {
	name    string
	enabled bool
	check   func(ctx context.Context) error
}

func (srv *HTTPServer) dependencyChecks() []dependencyCheck {
	storageCheck := configPostgre.HealthCheck
	if srv.storageDriver == config.StorageDriverSQLite {
		storageCheck = configSQLite.HealthCheck
	}

	return []dependencyCheck{
		{name: "database", enabled: true, check: storageCheck},
		{name: "redis", enabled: srv.redisClient != nil, check: configRedis.HealthCheck},
		{name: "kafka", enabled: srv.kafkaProducer != nil, check: func(context.Context) error {
			return configKafka.ProducerHealthCheck()
		}},
		{name: "rabbitmq", enabled: srv.rabbitMQ != nil, check: func(context.Context) error {
			return configRabbitMQ.HealthCheck()
		}},
		{name: "minio", enabled: srv.minioClient != nil, check: configMinIO.HealthCheck},
	}
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
