package rabbitmq

// TopMatchesMessage is published when a campaign gets a new ranking.
type TopMatchesMessage struct {
	RunID         string   `json:"run_id"`
	CampaignID    string   `json:"campaign_id"`
	BrandID       string   `json:"brand_id"`
	InfluencerIDs []string `json:"influencer_ids"`
}
