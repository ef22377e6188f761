package minio

import (
	"context"
	"fmt"
	"sync"

	"matching-srv/config"
	"matching-srv/pkg/minio"
)

var (
	instance minio.MinIO
	mu       sync.RWMutex
)

// Connect creates the MinIO client and makes sure the export bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.New(minio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Region:    cfg.Region,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to prepare MinIO bucket %s: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

// HealthCheck checks if MinIO is reachable.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	return instance.HealthCheck(ctx)
}
