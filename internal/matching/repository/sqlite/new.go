package sqlite

import (
	"context"
	"database/sql"

	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
	"matching-srv/pkg/log"
)

// Repository is the SQLite store. Besides the read side shared with Postgres it
// can seed campaigns and influencers, which the CLI uses for local data sets.
type Repository interface {
	repository.Repository
	UpsertCampaign(ctx context.Context, c model.Campaign) error
	UpsertInfluencer(ctx context.Context, inf model.Influencer) error
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
