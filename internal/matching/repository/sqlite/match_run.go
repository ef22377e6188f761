package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"

	"github.com/google/uuid"
)

func (r *implRepository) CreateMatchRun(ctx context.Context, opt repository.CreateMatchRunOptions) (model.MatchRun, error) {
	if opt.CampaignID == "" {
		return model.MatchRun{}, repository.ErrInvalidInput
	}
	run := model.MatchRun{
		ID:              opt.ID,
		CampaignID:      opt.CampaignID,
		Trigger:         opt.Trigger,
		CandidatesTotal: opt.CandidatesTotal,
		Results:         opt.Results,
		CreatedAt:       time.Now().UTC(),
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Results == nil {
		run.Results = []model.MatchResult{}
	}

	results, err := json.Marshal(run.Results)
	if err != nil {
		return model.MatchRun{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO match_runs (id, campaign_id, trigger_source, candidates_total, results, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CampaignID, run.Trigger, run.CandidatesTotal, string(results), formatTime(run.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.CreateMatchRun: %v", err)
		return model.MatchRun{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return run, nil
}

func (r *implRepository) GetMatchRuns(ctx context.Context, opt repository.GetMatchRunsOptions) ([]model.MatchRun, paginator.Paginator, error) {
	opt.Paginate.Adjust()

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM match_runs WHERE campaign_id = ?`, opt.CampaignID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.GetMatchRuns: count: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, trigger_source, candidates_total, results, created_at
		FROM match_runs WHERE campaign_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		opt.CampaignID, opt.Paginate.Limit, opt.Paginate.Offset(),
	)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.GetMatchRuns: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	runs := make([]model.MatchRun, 0)
	for rows.Next() {
		var (
			run                model.MatchRun
			results, createdAt string
		)
		if err := rows.Scan(&run.ID, &run.CampaignID, &run.Trigger, &run.CandidatesTotal, &results, &createdAt); err != nil {
			return nil, paginator.Paginator{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		if err := json.Unmarshal([]byte(results), &run.Results); err != nil {
			return nil, paginator.Paginator{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	return runs, opt.Paginate.Result(total, len(runs)), nil
}
