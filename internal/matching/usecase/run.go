package usecase

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"
)

// ListMatchRuns returns the persisted ranking history of a campaign.
func (uc *implUseCase) ListMatchRuns(ctx context.Context, sc model.Scope, input matching.ListMatchRunsInput) ([]model.MatchRun, paginator.Paginator, error) {
	if strings.TrimSpace(input.CampaignID) == "" {
		return nil, paginator.Paginator{}, matching.ErrInvalidInput
	}

	c, err := uc.getCampaign(ctx, input.CampaignID)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	if !canAccessCampaign(sc, c) {
		return nil, paginator.Paginator{}, matching.ErrForbidden
	}

	runs, pag, err := uc.repo.GetMatchRuns(ctx, repository.GetMatchRunsOptions{
		CampaignID: c.ID,
		Paginate:   input.Paginate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.ListMatchRuns: %v", err)
		return nil, paginator.Paginator{}, err
	}
	return runs, pag, nil
}

// RecomputeCampaign ranks the full candidate pool for an open campaign,
// persists the run, drops stale cache entries and fans the result out.
func (uc *implUseCase) RecomputeCampaign(ctx context.Context, input matching.RecomputeCampaignInput) (model.MatchRun, error) {
	if strings.TrimSpace(input.CampaignID) == "" {
		return model.MatchRun{}, matching.ErrInvalidInput
	}
	trigger := input.Trigger
	if trigger == "" {
		trigger = model.TriggerManual
	}

	c, err := uc.getCampaign(ctx, input.CampaignID)
	if err != nil {
		return model.MatchRun{}, err
	}
	if !c.IsOpen() {
		return model.MatchRun{}, matching.ErrCampaignNotOpen
	}

	matches, total, err := uc.rankInfluencers(ctx, c, matching.CandidateFilters{}, matching.MaxInfluencerLimit)
	if err != nil {
		return model.MatchRun{}, err
	}

	run, err := uc.repo.CreateMatchRun(ctx, repository.CreateMatchRunOptions{
		ID:              uuid.NewString(),
		CampaignID:      c.ID,
		Trigger:         trigger,
		CandidatesTotal: total,
		Results:         toResults(matches),
	})
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.RecomputeCampaign: create run: %v", err)
		return model.MatchRun{}, err
	}

	if err := uc.InvalidateCampaign(ctx, c.ID); err != nil {
		uc.l.Warnf(ctx, "matching.usecase.RecomputeCampaign: %v", err)
	}
	uc.fanOut(ctx, c, run)

	uc.l.Infof(ctx, "matching.usecase.RecomputeCampaign: campaign=%s run=%s trigger=%s ranked=%d/%d",
		c.ID, run.ID, trigger, len(run.Results), total)
	return run, nil
}

// fanOut publishes the run and notifies the brand. Failures are logged only;
// the run is already persisted.
func (uc *implUseCase) fanOut(ctx context.Context, c model.Campaign, run model.MatchRun) {
	if uc.publisher != nil {
		top := make([]matching.RankedInfluencer, len(run.Results))
		for i, r := range run.Results {
			top[i] = matching.RankedInfluencer{InfluencerID: r.InfluencerID, TotalScore: r.TotalScore}
		}
		if err := uc.publisher.PublishMatchResult(ctx, matching.MatchResultEvent{
			RunID:      run.ID,
			CampaignID: c.ID,
			Top:        top,
			ComputedAt: run.CreatedAt,
		}); err != nil {
			uc.l.Errorf(ctx, "matching.usecase.fanOut: publish: %v", err)
		}
	}

	if uc.notifier != nil && len(run.Results) > 0 {
		n := min(uc.cfg.NotifyTop, len(run.Results))
		ids := make([]string, n)
		for i := range n {
			ids[i] = run.Results[i].InfluencerID
		}
		if err := uc.notifier.NotifyTopMatches(ctx, matching.TopMatchesNotification{
			RunID:         run.ID,
			CampaignID:    c.ID,
			BrandID:       c.BrandID,
			InfluencerIDs: ids,
		}); err != nil {
			uc.l.Errorf(ctx, "matching.usecase.fanOut: notify: %v", err)
		}
	}
}

// RecomputeOpenCampaigns recomputes every published campaign on a bounded pool.
func (uc *implUseCase) RecomputeOpenCampaigns(ctx context.Context) (matching.RecomputeSummary, error) {
	campaigns, err := uc.repo.ListCampaigns(ctx, repository.ListCampaignsOptions{
		Status: model.CampaignStatusPublished,
	})
	if err != nil {
		uc.l.Errorf(ctx, "matching.usecase.RecomputeOpenCampaigns: %v", err)
		return matching.RecomputeSummary{}, err
	}

	var succeeded, failed atomic.Int64
	p := pool.New().WithMaxGoroutines(uc.cfg.RecomputeWorkers)
	for _, c := range campaigns {
		p.Go(func() {
			if ctx.Err() != nil {
				failed.Add(1)
				return
			}
			if _, err := uc.RecomputeCampaign(ctx, matching.RecomputeCampaignInput{
				CampaignID: c.ID,
				Trigger:    model.TriggerBatch,
			}); err != nil {
				uc.l.Warnf(ctx, "matching.usecase.RecomputeOpenCampaigns: campaign=%s: %v", c.ID, err)
				failed.Add(1)
				return
			}
			succeeded.Add(1)
		})
	}
	p.Wait()

	summary := matching.RecomputeSummary{
		Campaigns: len(campaigns),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}
	uc.l.Infof(ctx, "matching.usecase.RecomputeOpenCampaigns: %+v", summary)
	return summary, ctx.Err()
}

// InvalidateCampaign drops cached rankings that a campaign change can affect.
func (uc *implUseCase) InvalidateCampaign(ctx context.Context, campaignID string) error {
	if strings.TrimSpace(campaignID) == "" {
		return matching.ErrInvalidInput
	}
	if uc.cache == nil {
		return nil
	}
	if err := uc.cache.InvalidateCampaign(ctx, campaignID); err != nil {
		return err
	}
	return uc.cache.InvalidateInfluencerMatches(ctx)
}
