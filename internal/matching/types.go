package matching

import (
	"time"

	"matching-srv/internal/matching/engine"
	"matching-srv/pkg/paginator"
)

const (
	DefaultInfluencerLimit = 10
	MaxInfluencerLimit     = 50
	DefaultCampaignLimit   = 20
	MaxAdHocCandidates     = 1000
)

// CandidateFilters narrows the candidate pool before scoring. Zero values
// disable a filter.
type CandidateFilters struct {
	Platform     string
	MinFollowers int64
	Language     string
}

type RecommendInfluencersInput struct {
	CampaignID string
	Limit      int
	Filters    CandidateFilters
}

type RecommendInfluencersOutput struct {
	CampaignID      string
	Matches         []engine.MatchingScore
	CandidatesTotal int
	CacheHit        bool
}

type RecommendCampaignsInput struct {
	InfluencerID string
	Limit        int
}

type RecommendCampaignsOutput struct {
	InfluencerID   string
	Matches        []engine.MatchingScore
	CampaignsTotal int
	CacheHit       bool
}

type ScoreCandidateInput struct {
	CampaignID   string
	InfluencerID string
}

type ScoreAdHocInput struct {
	Campaign   engine.CampaignRequirements
	Candidates []engine.InfluencerProfile
	Limit      int
}

type ListMatchRunsInput struct {
	CampaignID string
	Paginate   paginator.PaginateQuery
}

type ExportShortlistInput struct {
	CampaignID string
	Limit      int
}

type ExportShortlistOutput struct {
	ObjectName string
	URL        string
	ExpiresAt  time.Time
	Count      int
}

type RecomputeCampaignInput struct {
	CampaignID string
	Trigger    string
}

// RecomputeSummary reports a bulk recompute.
type RecomputeSummary struct {
	Campaigns int
	Succeeded int
	Failed    int
}

// MatchResultEvent is published after a match run is persisted.
type MatchResultEvent struct {
	RunID      string
	CampaignID string
	Top        []RankedInfluencer
	ComputedAt time.Time
}

// RankedInfluencer is a compact ranked entry.
type RankedInfluencer struct {
	InfluencerID string
	TotalScore   int
}

// TopMatchesNotification is sent to the brand owning a campaign.
type TopMatchesNotification struct {
	RunID         string
	CampaignID    string
	BrandID       string
	InfluencerIDs []string
}
