package model

import (
	"time"

	"matching-srv/internal/matching/engine"
)

// Campaign statuses.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusPublished = "published"
	CampaignStatusClosed    = "closed"
)

// Campaign is a brand campaign as stored by the campaign service.
type Campaign struct {
	ID                   string
	BrandID              string
	BrandUserID          string
	Title                string
	Status               string
	Category             string
	TargetLanguages      []string
	TargetRegions        []string
	MinFollowers         int64
	BudgetMin            float64
	BudgetMax            float64
	Currency             string
	ContentRequirements  string
	PreferredInfluencers []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsOpen reports whether the campaign accepts influencers.
func (c Campaign) IsOpen() bool {
	return c.Status == CampaignStatusPublished
}

// Requirements converts the campaign into scoring input.
func (c Campaign) Requirements() engine.CampaignRequirements {
	return engine.CampaignRequirements{
		ID:              c.ID,
		Category:        c.Category,
		TargetLanguages: c.TargetLanguages,
		TargetRegions:   c.TargetRegions,
		MinFollowers:    c.MinFollowers,
		Budget: engine.Budget{
			Min:      c.BudgetMin,
			Max:      c.BudgetMax,
			Currency: c.Currency,
		},
		ContentRequirements:  c.ContentRequirements,
		PreferredInfluencers: c.PreferredInfluencers,
	}
}
