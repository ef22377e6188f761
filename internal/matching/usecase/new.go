package usecase

import (
	"time"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/repository"
	"matching-srv/pkg/log"
	"matching-srv/pkg/minio"
)

const (
	defaultCacheTTL          = 10 * time.Minute
	defaultCandidatePageSize = 5000
	defaultExportBucket      = "mein-shortlists"
	defaultExportURLExpiry   = 30 * time.Minute
	defaultRecomputeWorkers  = 4
	defaultNotifyTop         = 5
)

// Config tunes the matching usecase.
type Config struct {
	CacheTTL          time.Duration
	CandidatePageSize int
	ExportBucket      string
	ExportURLExpiry   time.Duration
	RecomputeWorkers  int
	NotifyTop         int
}

// Dependencies groups the collaborators of the usecase. Cache, Publisher,
// Notifier and Storage are optional; a nil value disables that side effect.
type Dependencies struct {
	Repo      repository.Repository
	Cache     repository.CacheRepository
	Publisher matching.Publisher
	Notifier  matching.Notifier
	Storage   minio.MinIO
}

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	cache     repository.CacheRepository
	publisher matching.Publisher
	notifier  matching.Notifier
	storage   minio.MinIO
	cfg       Config
}

// New creates a new matching UseCase implementation.
func New(l log.Logger, deps Dependencies, cfg Config) matching.UseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.CandidatePageSize <= 0 {
		cfg.CandidatePageSize = defaultCandidatePageSize
	}
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}
	if cfg.ExportURLExpiry <= 0 {
		cfg.ExportURLExpiry = defaultExportURLExpiry
	}
	if cfg.RecomputeWorkers <= 0 {
		cfg.RecomputeWorkers = defaultRecomputeWorkers
	}
	if cfg.NotifyTop <= 0 {
		cfg.NotifyTop = defaultNotifyTop
	}

	return &implUseCase{
		l:         l,
		repo:      deps.Repo,
		cache:     deps.Cache,
		publisher: deps.Publisher,
		notifier:  deps.Notifier,
		storage:   deps.Storage,
		cfg:       cfg,
	}
}
