package repository

import (
	"time"

	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"
)

// ListCampaignsOptions filters campaigns. Limit 0 means the repository cap.
type ListCampaignsOptions struct {
	Status string
	Limit  int
}

// ListInfluencersOptions filters the candidate pool. Zero values disable a filter.
// After resumes the (created_at, id) ordering past a previously returned row.
type ListInfluencersOptions struct {
	Platform     string
	MinFollowers int64
	Language     string
	After        *InfluencerCursor
	Limit        int
}

// InfluencerCursor is the ordering key of the last influencer on a page.
type InfluencerCursor struct {
	CreatedAt time.Time
	ID        string
}

// CreateMatchRunOptions describes a run to persist. ID is generated when empty.
type CreateMatchRunOptions struct {
	ID              string
	CampaignID      string
	Trigger         string
	CandidatesTotal int
	Results         []model.MatchResult
}

// GetMatchRunsOptions pages through a campaign's runs, newest first.
type GetMatchRunsOptions struct {
	CampaignID string
	Paginate   paginator.PaginateQuery
}

// CampaignMatchesKey identifies a cached ranking for a campaign.
type CampaignMatchesKey struct {
	CampaignID string
	Limit      int
	Platform   string
	MinFollows int64
	Language   string
}

// InfluencerMatchesKey identifies a cached campaign ranking for an influencer.
type InfluencerMatchesKey struct {
	InfluencerID string
	Limit        int
}

// CachedMatches is a ranking with the size of the pool it was drawn from.
type CachedMatches struct {
	Matches []engine.MatchingScore `json:"matches"`
	Total   int                    `json:"total"`
}
