package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
)

const influencerColumns = `i.id, i.user_id, i.display_name, i.expertise, i.languages, i.location,
	i.total_campaigns, i.completed_campaigns, i.avg_rating, i.completion_rate, i.created_at`

func scanInfluencer(row rowScanner) (model.Influencer, error) {
	var (
		inf                  model.Influencer
		userID, location     sql.NullString
		expertise, languages sql.NullString
		createdAt            string
	)
	err := row.Scan(
		&inf.ID, &userID, &inf.DisplayName, &expertise, &languages, &location,
		&inf.Stats.TotalCampaigns, &inf.Stats.CompletedCampaigns,
		&inf.Stats.AvgRating, &inf.Stats.CompletionRate, &createdAt,
	)
	if err != nil {
		return model.Influencer{}, err
	}
	inf.UserID = userID.String
	inf.Location = location.String
	inf.Expertise = decodeList(expertise)
	inf.Languages = decodeList(languages)
	inf.CreatedAt = parseTime(createdAt)
	return inf, nil
}

func (r *implRepository) DetailInfluencer(ctx context.Context, id string) (model.Influencer, error) {
	inf, err := scanInfluencer(r.db.QueryRowContext(ctx,
		`SELECT `+influencerColumns+` FROM influencers i WHERE i.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Influencer{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.DetailInfluencer: %v", err)
		return model.Influencer{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	list := []model.Influencer{inf}
	if err := r.attachDetails(ctx, list); err != nil {
		return model.Influencer{}, err
	}
	return list[0], nil
}

func (r *implRepository) ListInfluencers(ctx context.Context, opt repository.ListInfluencersOptions) ([]model.Influencer, error) {
	var (
		conds []string
		args  []any
	)
	if opt.Platform != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM influencer_social_accounts a
			WHERE a.influencer_id = i.id AND lower(a.platform) = lower(?))`)
		args = append(args, opt.Platform)
	}
	if opt.MinFollowers > 0 {
		conds = append(conds, `(SELECT COALESCE(SUM(a.followers), 0) FROM influencer_social_accounts a
			WHERE a.influencer_id = i.id) >= ?`)
		args = append(args, opt.MinFollowers)
	}
	if opt.Language != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM json_each(i.languages) l WHERE lower(l.value) = lower(?))`)
		args = append(args, opt.Language)
	}
	if opt.After != nil {
		at := formatTime(opt.After.CreatedAt)
		conds = append(conds, `(i.created_at > ? OR (i.created_at = ? AND i.id > ?))`)
		args = append(args, at, at, opt.After.ID)
	}

	q := `SELECT ` + influencerColumns + ` FROM influencers i`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	q += ` ORDER BY i.created_at ASC, i.id ASC LIMIT ?`
	args = append(args, listLimit(opt.Limit))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.ListInfluencers: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	influencers := make([]model.Influencer, 0)
	for rows.Next() {
		inf, err := scanInfluencer(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		influencers = append(influencers, inf)
	}
	// Close before the detail queries: the pool holds a single connection.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	if err := r.attachDetails(ctx, influencers); err != nil {
		return nil, err
	}
	return influencers, nil
}

// detailChunk keeps IN lists under SQLite's bound parameter limit.
const detailChunk = 500

// attachDetails loads accounts and portfolio with two queries per chunk of influencers.
func (r *implRepository) attachDetails(ctx context.Context, influencers []model.Influencer) error {
	index := make(map[string]int, len(influencers))
	for i, inf := range influencers {
		index[inf.ID] = i
	}
	for start := 0; start < len(influencers); start += detailChunk {
		end := min(start+detailChunk, len(influencers))
		ids := make([]any, 0, end-start)
		for _, inf := range influencers[start:end] {
			ids = append(ids, inf.ID)
		}
		in := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		if err := r.attachAccounts(ctx, influencers, index, in, ids); err != nil {
			return err
		}
		if err := r.attachPortfolio(ctx, influencers, index, in, ids); err != nil {
			return err
		}
	}
	return nil
}

func (r *implRepository) attachAccounts(ctx context.Context, influencers []model.Influencer, index map[string]int, in string, ids []any) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT influencer_id, platform, handle, followers, avg_views, engagement_rate
		FROM influencer_social_accounts WHERE influencer_id IN (`+in+`)
		ORDER BY influencer_id, platform`, ids...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.attachAccounts: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			owner  string
			a      model.SocialAccount
			handle sql.NullString
		)
		if err := rows.Scan(&owner, &a.Platform, &handle, &a.Followers, &a.AvgViews, &a.EngagementRate); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		a.Handle = handle.String
		if i, ok := index[owner]; ok {
			influencers[i].SocialAccounts = append(influencers[i].SocialAccounts, a)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return nil
}

func (r *implRepository) attachPortfolio(ctx context.Context, influencers []model.Influencer, index map[string]int, in string, ids []any) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT influencer_id, category, performance FROM influencer_portfolio
		WHERE influencer_id IN (`+in+`) ORDER BY influencer_id, rowid`, ids...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.attachPortfolio: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			owner string
			p     model.PortfolioItem
		)
		if err := rows.Scan(&owner, &p.Category, &p.Performance); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		if i, ok := index[owner]; ok {
			influencers[i].Portfolio = append(influencers[i].Portfolio, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return nil
}

// UpsertInfluencer replaces an influencer together with accounts and portfolio.
func (r *implRepository) UpsertInfluencer(ctx context.Context, inf model.Influencer) error {
	if inf.ID == "" {
		return repository.ErrInvalidInput
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO influencers (id, user_id, display_name, expertise, languages, location,
			total_campaigns, completed_campaigns, avg_rating, completion_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			display_name = excluded.display_name,
			expertise = excluded.expertise,
			languages = excluded.languages,
			location = excluded.location,
			total_campaigns = excluded.total_campaigns,
			completed_campaigns = excluded.completed_campaigns,
			avg_rating = excluded.avg_rating,
			completion_rate = excluded.completion_rate`,
		inf.ID, inf.UserID, inf.DisplayName, encodeList(inf.Expertise), encodeList(inf.Languages), inf.Location,
		inf.Stats.TotalCampaigns, inf.Stats.CompletedCampaigns, inf.Stats.AvgRating, inf.Stats.CompletionRate,
		formatTime(inf.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.UpsertInfluencer: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	for _, stmt := range []string{
		`DELETE FROM influencer_social_accounts WHERE influencer_id = ?`,
		`DELETE FROM influencer_portfolio WHERE influencer_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, inf.ID); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
	}
	for _, a := range inf.SocialAccounts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO influencer_social_accounts (influencer_id, platform, handle, followers, avg_views, engagement_rate)
			VALUES (?, ?, ?, ?, ?, ?)`,
			inf.ID, a.Platform, a.Handle, a.Followers, a.AvgViews, a.EngagementRate,
		); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
	}
	for _, p := range inf.Portfolio {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO influencer_portfolio (influencer_id, category, performance) VALUES (?, ?, ?)`,
			inf.ID, p.Category, p.Performance,
		); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}
