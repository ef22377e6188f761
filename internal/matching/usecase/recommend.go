package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
)

// RecommendInfluencers ranks influencers for a campaign owned by the caller.
// Rankings are served from cache until the campaign changes or the TTL expires.
func (uc *implUseCase) RecommendInfluencers(ctx context.Context, sc model.Scope, input matching.RecommendInfluencersInput) (matching.RecommendInfluencersOutput, error) {
	if strings.TrimSpace(input.CampaignID) == "" {
		return matching.RecommendInfluencersOutput{}, matching.ErrInvalidInput
	}
	if input.Filters.MinFollowers < 0 {
		return matching.RecommendInfluencersOutput{}, matching.ErrInvalidInput
	}
	limit := normalizeLimit(input.Limit, matching.DefaultInfluencerLimit, matching.MaxInfluencerLimit)

	c, err := uc.getCampaign(ctx, input.CampaignID)
	if err != nil {
		return matching.RecommendInfluencersOutput{}, err
	}
	if !canAccessCampaign(sc, c) {
		return matching.RecommendInfluencersOutput{}, matching.ErrForbidden
	}

	key := repository.CampaignMatchesKey{
		CampaignID: c.ID,
		Limit:      limit,
		Platform:   input.Filters.Platform,
		MinFollows: input.Filters.MinFollowers,
		Language:   input.Filters.Language,
	}
	if uc.cache != nil {
		cached, err := uc.cache.GetCampaignMatches(ctx, key)
		if err == nil {
			return matching.RecommendInfluencersOutput{
				CampaignID:      c.ID,
				Matches:         cached.Matches,
				CandidatesTotal: cached.Total,
				CacheHit:        true,
			}, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "matching.usecase.RecommendInfluencers: cache read failed: %v", err)
		}
	}

	matches, total, err := uc.rankInfluencers(ctx, c, input.Filters, limit)
	if err != nil {
		return matching.RecommendInfluencersOutput{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetCampaignMatches(ctx, key, repository.CachedMatches{Matches: matches, Total: total}, uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "matching.usecase.RecommendInfluencers: cache write failed: %v", err)
		}
	}

	return matching.RecommendInfluencersOutput{
		CampaignID:      c.ID,
		Matches:         matches,
		CandidatesTotal: total,
	}, nil
}

// RecommendCampaigns ranks open campaigns for an influencer.
func (uc *implUseCase) RecommendCampaigns(ctx context.Context, sc model.Scope, input matching.RecommendCampaignsInput) (matching.RecommendCampaignsOutput, error) {
	if strings.TrimSpace(input.InfluencerID) == "" {
		return matching.RecommendCampaignsOutput{}, matching.ErrInvalidInput
	}
	limit := normalizeLimit(input.Limit, matching.DefaultCampaignLimit, matching.MaxInfluencerLimit)

	var (
		inf       model.Influencer
		campaigns []model.Campaign
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inf, err = uc.getInfluencer(gctx, input.InfluencerID)
		return err
	})
	g.Go(func() error {
		var err error
		campaigns, err = uc.repo.ListCampaigns(gctx, repository.ListCampaignsOptions{
			Status: model.CampaignStatusPublished,
		})
		if err != nil {
			uc.l.Errorf(gctx, "matching.usecase.RecommendCampaigns: list campaigns: %v", err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return matching.RecommendCampaignsOutput{}, err
	}

	if !sc.IsAdmin() && !isInfluencerSelf(sc, inf) {
		return matching.RecommendCampaignsOutput{}, matching.ErrForbidden
	}

	profile := inf.Profile()
	if err := validateProfile(profile); err != nil {
		return matching.RecommendCampaignsOutput{}, err
	}

	key := repository.InfluencerMatchesKey{InfluencerID: inf.ID, Limit: limit}
	if uc.cache != nil {
		if cached, err := uc.cache.GetInfluencerMatches(ctx, key); err == nil {
			return matching.RecommendCampaignsOutput{
				InfluencerID:   inf.ID,
				Matches:        cached.Matches,
				CampaignsTotal: cached.Total,
				CacheHit:       true,
			}, nil
		}
	}

	reqs := make([]engine.CampaignRequirements, 0, len(campaigns))
	for _, c := range campaigns {
		req := c.Requirements()
		if err := validateRequirements(req); err != nil {
			uc.l.Warnf(ctx, "matching.usecase.RecommendCampaigns: skipping campaign %s: %v", c.ID, err)
			continue
		}
		reqs = append(reqs, req)
	}
	matches := engine.FindBestCampaigns(profile, reqs, limit)

	if uc.cache != nil {
		if err := uc.cache.SetInfluencerMatches(ctx, key, repository.CachedMatches{Matches: matches, Total: len(reqs)}, uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "matching.usecase.RecommendCampaigns: cache write failed: %v", err)
		}
	}

	return matching.RecommendCampaignsOutput{
		InfluencerID:   inf.ID,
		Matches:        matches,
		CampaignsTotal: len(reqs),
	}, nil
}
