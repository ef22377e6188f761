package cli

import (
	"matching-srv/internal/model"
)

// seedFile is the import format: the records the campaign and profile
// services would own, flattened to JSON.
type seedFile struct {
	Campaigns   []seedCampaign   `json:"campaigns"`
	Influencers []seedInfluencer `json:"influencers"`
}

type seedCampaign struct {
	ID                   string   `json:"id"`
	BrandID              string   `json:"brand_id"`
	BrandUserID          string   `json:"brand_user_id"`
	Title                string   `json:"title"`
	Status               string   `json:"status"`
	Category             string   `json:"category"`
	TargetLanguages      []string `json:"target_languages"`
	TargetRegions        []string `json:"target_regions"`
	MinFollowers         int64    `json:"min_followers"`
	BudgetMin            float64  `json:"budget_min"`
	BudgetMax            float64  `json:"budget_max"`
	Currency             string   `json:"currency"`
	ContentRequirements  string   `json:"content_requirements"`
	PreferredInfluencers []string `json:"preferred_influencer_types"`
}

type seedInfluencer struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	DisplayName    string              `json:"display_name"`
	Expertise      []string            `json:"expertise"`
	Languages      []string            `json:"languages"`
	Location       string              `json:"location"`
	SocialAccounts []seedSocialAccount `json:"social_accounts"`
	Stats          seedStats           `json:"stats"`
	Portfolio      []seedPortfolioItem `json:"portfolio"`
}

type seedSocialAccount struct {
	Platform       string  `json:"platform"`
	Handle         string  `json:"handle"`
	Followers      int64   `json:"followers"`
	AvgViews       int64   `json:"avg_views"`
	EngagementRate float64 `json:"engagement_rate"`
}

type seedStats struct {
	TotalCampaigns     int     `json:"total_campaigns"`
	CompletedCampaigns int     `json:"completed_campaigns"`
	AvgRating          float64 `json:"avg_rating"`
	CompletionRate     float64 `json:"completion_rate"`
}

type seedPortfolioItem struct {
	Category    string  `json:"category"`
	Performance float64 `json:"performance"`
}

func (c seedCampaign) toModel() model.Campaign {
	status := c.Status
	if status == "" {
		status = model.CampaignStatusPublished
	}
	return model.Campaign{
		ID:                   c.ID,
		BrandID:              c.BrandID,
		BrandUserID:          c.BrandUserID,
		Title:                c.Title,
		Status:               status,
		Category:             c.Category,
		TargetLanguages:      c.TargetLanguages,
		TargetRegions:        c.TargetRegions,
		MinFollowers:         c.MinFollowers,
		BudgetMin:            c.BudgetMin,
		BudgetMax:            c.BudgetMax,
		Currency:             c.Currency,
		ContentRequirements:  c.ContentRequirements,
		PreferredInfluencers: c.PreferredInfluencers,
	}
}

func (i seedInfluencer) toModel() model.Influencer {
	accounts := make([]model.SocialAccount, len(i.SocialAccounts))
	for n, a := range i.SocialAccounts {
		accounts[n] = model.SocialAccount(a)
	}
	portfolio := make([]model.PortfolioItem, len(i.Portfolio))
	for n, p := range i.Portfolio {
		portfolio[n] = model.PortfolioItem(p)
	}
	return model.Influencer{
		ID:             i.ID,
		UserID:         i.UserID,
		DisplayName:    i.DisplayName,
		Expertise:      i.Expertise,
		Languages:      i.Languages,
		Location:       i.Location,
		SocialAccounts: accounts,
		Stats:          model.InfluencerStats(i.Stats),
		Portfolio:      portfolio,
	}
}
