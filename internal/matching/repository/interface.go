package repository

import (
	"context"
	"time"

	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	CampaignRepository
	InfluencerRepository
	MatchRunRepository
}

// CampaignRepository reads campaigns owned by the campaign service.
type CampaignRepository interface {
	DetailCampaign(ctx context.Context, id string) (model.Campaign, error)
	ListCampaigns(ctx context.Context, opt ListCampaignsOptions) ([]model.Campaign, error)
}

// InfluencerRepository reads influencer profiles with their accounts and portfolio.
type InfluencerRepository interface {
	DetailInfluencer(ctx context.Context, id string) (model.Influencer, error)
	ListInfluencers(ctx context.Context, opt ListInfluencersOptions) ([]model.Influencer, error)
}

// MatchRunRepository persists ranking snapshots.
type MatchRunRepository interface {
	CreateMatchRun(ctx context.Context, opt CreateMatchRunOptions) (model.MatchRun, error)
	GetMatchRuns(ctx context.Context, opt GetMatchRunsOptions) ([]model.MatchRun, paginator.Paginator, error)
}

// CacheRepository stores ranked results between recomputes.
type CacheRepository interface {
	GetCampaignMatches(ctx context.Context, opt CampaignMatchesKey) (CachedMatches, error)
	SetCampaignMatches(ctx context.Context, opt CampaignMatchesKey, m CachedMatches, ttl time.Duration) error
	GetInfluencerMatches(ctx context.Context, opt InfluencerMatchesKey) (CachedMatches, error)
	SetInfluencerMatches(ctx context.Context, opt InfluencerMatchesKey, m CachedMatches, ttl time.Duration) error
	InvalidateCampaign(ctx context.Context, campaignID string) error
	InvalidateInfluencerMatches(ctx context.Context) error
}
