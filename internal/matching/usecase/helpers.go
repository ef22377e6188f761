package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
)

func normalizeLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// validateRequirements rejects campaign records the engine must never see.
func validateRequirements(c engine.CampaignRequirements) error {
	if c.MinFollowers < 0 {
		return fmt.Errorf("%w: min_followers must not be negative", matching.ErrInvalidInput)
	}
	if c.Budget.Min < 0 || c.Budget.Max < 0 || isBadFloat(c.Budget.Min) || isBadFloat(c.Budget.Max) {
		return matching.ErrInvalidBudget
	}
	if c.Budget.Min > c.Budget.Max {
		return matching.ErrInvalidBudget
	}
	return nil
}

func validateProfile(p engine.InfluencerProfile) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: influencer id is required", matching.ErrInvalidInput)
	}
	for _, a := range p.SocialAccounts {
		if a.Followers < 0 || a.AvgViews < 0 {
			return fmt.Errorf("%w: influencer %s has negative audience figures", matching.ErrInvalidInput, p.ID)
		}
	}
	s := p.Stats
	if s.TotalCampaigns < 0 || s.CompletedCampaigns < 0 {
		return fmt.Errorf("%w: influencer %s has negative campaign counts", matching.ErrInvalidInput, p.ID)
	}
	if isBadFloat(s.AvgRating) || s.AvgRating < 0 || s.AvgRating > 5 {
		return fmt.Errorf("%w: influencer %s rating must be within 0-5", matching.ErrInvalidInput, p.ID)
	}
	if isBadFloat(s.CompletionRate) || s.CompletionRate < 0 || s.CompletionRate > 1 {
		return fmt.Errorf("%w: influencer %s completion rate must be within 0-1", matching.ErrInvalidInput, p.ID)
	}
	return nil
}

func isBadFloat(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// profiles converts stored influencers, skipping records that fail validation.
func (uc *implUseCase) profiles(ctx context.Context, influencers []model.Influencer) []engine.InfluencerProfile {
	out := make([]engine.InfluencerProfile, 0, len(influencers))
	for _, inf := range influencers {
		p := inf.Profile()
		if err := validateProfile(p); err != nil {
			uc.l.Warnf(ctx, "matching.usecase.profiles: skipping influencer: %v", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

func canAccessCampaign(sc model.Scope, c model.Campaign) bool {
	if sc.IsAdmin() {
		return true
	}
	return sc.Role == model.RoleBrand && sc.UserID != "" && c.BrandUserID == sc.UserID
}

func isInfluencerSelf(sc model.Scope, inf model.Influencer) bool {
	return sc.Role == model.RoleInfluencer && sc.UserID != "" && inf.UserID == sc.UserID
}

func (uc *implUseCase) getCampaign(ctx context.Context, id string) (model.Campaign, error) {
	c, err := uc.repo.DetailCampaign(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Campaign{}, matching.ErrCampaignNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.getCampaign: %v", err)
		return model.Campaign{}, err
	}
	return c, nil
}

func (uc *implUseCase) getInfluencer(ctx context.Context, id string) (model.Influencer, error) {
	inf, err := uc.repo.DetailInfluencer(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Influencer{}, matching.ErrInfluencerNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.getInfluencer: %v", err)
		return model.Influencer{}, err
	}
	return inf, nil
}

// rankInfluencers scores the whole candidate pool for a campaign, reading it
// page by page in (created_at, id) order.
func (uc *implUseCase) rankInfluencers(ctx context.Context, c model.Campaign, filters matching.CandidateFilters, limit int) ([]engine.MatchingScore, int, error) {
	req := c.Requirements()
	if err := validateRequirements(req); err != nil {
		return nil, 0, err
	}

	opt := repository.ListInfluencersOptions{
		Platform:     filters.Platform,
		MinFollowers: filters.MinFollowers,
		Language:     filters.Language,
		Limit:        min(uc.cfg.CandidatePageSize, repository.MaxListLimit),
	}
	var candidates []engine.InfluencerProfile
	for {
		page, err := uc.repo.ListInfluencers(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "matching.usecase.rankInfluencers: %v", err)
			return nil, 0, err
		}
		candidates = append(candidates, uc.profiles(ctx, page)...)
		if len(page) < opt.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		last := page[len(page)-1]
		opt.After = &repository.InfluencerCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return engine.FindBestMatches(req, candidates, limit), len(candidates), nil
}

func toResults(scores []engine.MatchingScore) []model.MatchResult {
	out := make([]model.MatchResult, len(scores))
	for i, s := range scores {
		out[i] = model.MatchResult{
			InfluencerID: s.CandidateID,
			TotalScore:   s.TotalScore,
			Reasons:      s.Reasons,
		}
	}
	return out
}
