package engine

// Weights applied to each sub-score. They sum to exactly 1.0.
const (
	WeightContent     = 0.30
	WeightAudience    = 0.25
	WeightPerformance = 0.20
	WeightLocation    = 0.10
	WeightBudget      = 0.10
	WeightLanguage    = 0.05
)

const (
	// MinTotalScore is the exclusive lower bound a candidate must clear to be ranked.
	MinTotalScore = 30
	// ReasonThreshold is the sub-score a factor must reach to contribute a reason.
	ReasonThreshold = 80.0
	// DefaultLimit is used when the caller passes a non-positive limit.
	DefaultLimit = 10
)

// Budget is a campaign budget range. Currency is carried, never converted.
type Budget struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

// CampaignRequirements describes what a campaign is looking for.
type CampaignRequirements struct {
	ID                   string   `json:"id"`
	Category             string   `json:"category"`
	TargetLanguages      []string `json:"target_languages"`
	TargetRegions        []string `json:"target_regions"`
	MinFollowers         int64    `json:"min_followers"`
	Budget               Budget   `json:"budget"`
	ContentRequirements  string   `json:"content_requirements,omitempty"`
	PreferredInfluencers []string `json:"preferred_influencer_types,omitempty"`
}

// SocialAccount is one platform presence of an influencer.
type SocialAccount struct {
	Platform       string  `json:"platform"`
	Followers      int64   `json:"followers"`
	AvgViews       int64   `json:"avg_views"`
	EngagementRate float64 `json:"engagement_rate"`
}

// InfluencerStats aggregates an influencer's campaign history.
type InfluencerStats struct {
	TotalCampaigns     int     `json:"total_campaigns"`
	CompletedCampaigns int     `json:"completed_campaigns"`
	AvgRating          float64 `json:"avg_rating"`      // 0-5
	CompletionRate     float64 `json:"completion_rate"` // 0-1
}

// PortfolioItem is a past piece of work in a given category.
type PortfolioItem struct {
	Category    string  `json:"category"`
	Performance float64 `json:"performance"`
}

// InfluencerProfile describes a candidate influencer.
type InfluencerProfile struct {
	ID             string          `json:"id"`
	Expertise      []string        `json:"expertise"`
	Languages      []string        `json:"languages"`
	Location       string          `json:"location"`
	SocialAccounts []SocialAccount `json:"social_accounts"`
	Stats          InfluencerStats `json:"stats"`
	Portfolio      []PortfolioItem `json:"portfolio"`
}

// TotalFollowers sums followers across all social accounts.
func (p InfluencerProfile) TotalFollowers() int64 {
	var total int64
	for _, a := range p.SocialAccounts {
		total += a.Followers
	}
	return total
}

// Breakdown holds the six sub-scores before weighting.
type Breakdown struct {
	Content     float64 `json:"content_similarity"`
	Audience    float64 `json:"audience_fit"`
	Performance float64 `json:"performance_history"`
	Location    float64 `json:"location_fit"`
	Budget      float64 `json:"budget_fit"`
	Language    float64 `json:"language_fit"`
}

// MatchingScore is the result of scoring one candidate.
type MatchingScore struct {
	CandidateID string    `json:"candidate_id"`
	TotalScore  int       `json:"total_score"`
	Breakdown   Breakdown `json:"breakdown"`
	Reasons     []string  `json:"reasons"`
}
