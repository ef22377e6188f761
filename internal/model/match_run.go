package model

import "time"

// Match run triggers.
const (
	TriggerAPI    = "api"
	TriggerEvent  = "event"
	TriggerBatch  = "batch"
	TriggerManual = "manual"
)

// MatchRun is a persisted ranking of influencers for a campaign.
type MatchRun struct {
	ID              string
	CampaignID      string
	Trigger         string
	CandidatesTotal int
	Results         []MatchResult
	CreatedAt       time.Time
}

// MatchResult is one ranked influencer within a run.
type MatchResult struct {
	InfluencerID string   `json:"influencer_id"`
	TotalScore   int      `json:"total_score"`
	Reasons      []string `json:"reasons"`
}
