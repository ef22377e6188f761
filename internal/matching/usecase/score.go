package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
)

// ScoreCandidate scores a single pair. The result is returned even when it
// would not clear the ranking threshold.
func (uc *implUseCase) ScoreCandidate(ctx context.Context, sc model.Scope, input matching.ScoreCandidateInput) (engine.MatchingScore, error) {
	if strings.TrimSpace(input.CampaignID) == "" || strings.TrimSpace(input.InfluencerID) == "" {
		return engine.MatchingScore{}, matching.ErrInvalidInput
	}

	var (
		c   model.Campaign
		inf model.Influencer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = uc.getCampaign(gctx, input.CampaignID)
		return err
	})
	g.Go(func() error {
		var err error
		inf, err = uc.getInfluencer(gctx, input.InfluencerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return engine.MatchingScore{}, err
	}

	if !canAccessCampaign(sc, c) && !isInfluencerSelf(sc, inf) {
		return engine.MatchingScore{}, matching.ErrForbidden
	}

	req := c.Requirements()
	if err := validateRequirements(req); err != nil {
		return engine.MatchingScore{}, err
	}
	profile := inf.Profile()
	if err := validateProfile(profile); err != nil {
		return engine.MatchingScore{}, err
	}

	return engine.CalculateMatchScore(req, profile), nil
}

// ScoreAdHoc ranks caller-supplied records without touching storage.
func (uc *implUseCase) ScoreAdHoc(ctx context.Context, input matching.ScoreAdHocInput) ([]engine.MatchingScore, error) {
	if len(input.Candidates) > matching.MaxAdHocCandidates {
		return nil, matching.ErrTooManyCandidates
	}
	if err := validateRequirements(input.Campaign); err != nil {
		return nil, err
	}
	for _, p := range input.Candidates {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
	}

	limit := normalizeLimit(input.Limit, engine.DefaultLimit, matching.MaxAdHocCandidates)
	return engine.FindBestMatches(input.Campaign, input.Candidates, limit), nil
}
