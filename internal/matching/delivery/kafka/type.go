package kafka

import "time"

// CampaignEventMessage is consumed from the campaign events topic.
type CampaignEventMessage struct {
	EventType  string    `json:"event_type"`
	CampaignID string    `json:"campaign_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MatchResultMessage is published to the match results topic.
type MatchResultMessage struct {
	RunID      string                    `json:"run_id"`
	CampaignID string                    `json:"campaign_id"`
	Top        []RankedInfluencerMessage `json:"top"`
	ComputedAt time.Time                 `json:"computed_at"`
}

type RankedInfluencerMessage struct {
	InfluencerID string `json:"influencer_id"`
	TotalScore   int    `json:"total_score"`
}
