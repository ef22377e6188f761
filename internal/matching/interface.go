package matching

import (
	"context"

	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	RecommendInfluencers(ctx context.Context, sc model.Scope, input RecommendInfluencersInput) (RecommendInfluencersOutput, error)
	RecommendCampaigns(ctx context.Context, sc model.Scope, input RecommendCampaignsInput) (RecommendCampaignsOutput, error)
	ScoreCandidate(ctx context.Context, sc model.Scope, input ScoreCandidateInput) (engine.MatchingScore, error)
	ScoreAdHoc(ctx context.Context, input ScoreAdHocInput) ([]engine.MatchingScore, error)
	ListMatchRuns(ctx context.Context, sc model.Scope, input ListMatchRunsInput) ([]model.MatchRun, paginator.Paginator, error)
	ExportShortlist(ctx context.Context, sc model.Scope, input ExportShortlistInput) (ExportShortlistOutput, error)

	// Used by the event consumer and internal routes; no caller scope.
	RecomputeCampaign(ctx context.Context, input RecomputeCampaignInput) (model.MatchRun, error)
	RecomputeOpenCampaigns(ctx context.Context) (RecomputeSummary, error)
	InvalidateCampaign(ctx context.Context, campaignID string) error
}

// Publisher emits match results to downstream services.
type Publisher interface {
	PublishMatchResult(ctx context.Context, result MatchResultEvent) error
}

// Notifier tells brands about new top matches.
type Notifier interface {
	NotifyTopMatches(ctx context.Context, n TopMatchesNotification) error
}
