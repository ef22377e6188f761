package model

import (
	"time"

	"matching-srv/internal/matching/engine"
)

// Influencer is an influencer with their social accounts, stats and portfolio.
type Influencer struct {
	ID             string
	UserID         string
	DisplayName    string
	Expertise      []string
	Languages      []string
	Location       string
	SocialAccounts []SocialAccount
	Stats          InfluencerStats
	Portfolio      []PortfolioItem
	CreatedAt      time.Time
}

// SocialAccount is one platform presence of an influencer.
type SocialAccount struct {
	Platform       string
	Handle         string
	Followers      int64
	AvgViews       int64
	EngagementRate float64
}

// InfluencerStats is the aggregated campaign history of an influencer.
type InfluencerStats struct {
	TotalCampaigns     int
	CompletedCampaigns int
	AvgRating          float64
	CompletionRate     float64
}

// PortfolioItem is a past piece of work.
type PortfolioItem struct {
	Category    string
	Performance float64
}

// Profile converts the influencer into scoring input.
func (i Influencer) Profile() engine.InfluencerProfile {
	accounts := make([]engine.SocialAccount, len(i.SocialAccounts))
	for n, a := range i.SocialAccounts {
		accounts[n] = engine.SocialAccount{
			Platform:       a.Platform,
			Followers:      a.Followers,
			AvgViews:       a.AvgViews,
			EngagementRate: a.EngagementRate,
		}
	}
	portfolio := make([]engine.PortfolioItem, len(i.Portfolio))
	for n, p := range i.Portfolio {
		portfolio[n] = engine.PortfolioItem{Category: p.Category, Performance: p.Performance}
	}

	return engine.InfluencerProfile{
		ID:             i.ID,
		Expertise:      i.Expertise,
		Languages:      i.Languages,
		Location:       i.Location,
		SocialAccounts: accounts,
		Stats: engine.InfluencerStats{
			TotalCampaigns:     i.Stats.TotalCampaigns,
			CompletedCampaigns: i.Stats.CompletedCampaigns,
			AvgRating:          i.Stats.AvgRating,
			CompletionRate:     i.Stats.CompletionRate,
		},
		Portfolio: portfolio,
	}
}
