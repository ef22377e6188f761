package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"
)

const campaignColumns = `id, brand_id, brand_user_id, title, status, category,
	target_languages, target_regions, min_followers, budget_min, budget_max, currency,
	content_requirements, preferred_influencer_types, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (model.Campaign, error) {
	var (
		c                            model.Campaign
		brandUser, currency, content sql.NullString
		langs, regions, preferred    sql.NullString
		createdAt, updatedAt         string
	)
	err := row.Scan(
		&c.ID, &c.BrandID, &brandUser, &c.Title, &c.Status, &c.Category,
		&langs, &regions, &c.MinFollowers, &c.BudgetMin, &c.BudgetMax, &currency,
		&content, &preferred, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Campaign{}, err
	}
	c.BrandUserID = brandUser.String
	c.Currency = currency.String
	c.ContentRequirements = content.String
	c.TargetLanguages = decodeList(langs)
	c.TargetRegions = decodeList(regions)
	c.PreferredInfluencers = decodeList(preferred)
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}

func (r *implRepository) DetailCampaign(ctx context.Context, id string) (model.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Campaign{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.DetailCampaign: %v", err)
		return model.Campaign{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return c, nil
}

func (r *implRepository) ListCampaigns(ctx context.Context, opt repository.ListCampaignsOptions) ([]model.Campaign, error) {
	q := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []any
	if opt.Status != "" {
		q += ` WHERE status = ?`
		args = append(args, opt.Status)
	}
	q += ` ORDER BY created_at DESC, id ASC LIMIT ?`
	args = append(args, listLimit(opt.Limit))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.ListCampaigns: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	campaigns := make([]model.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// UpsertCampaign inserts or replaces a campaign.
func (r *implRepository) UpsertCampaign(ctx context.Context, c model.Campaign) error {
	if c.ID == "" {
		return repository.ErrInvalidInput
	}
	if c.Status == "" {
		c.Status = model.CampaignStatusPublished
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns (`+campaignColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			brand_id = excluded.brand_id,
			brand_user_id = excluded.brand_user_id,
			title = excluded.title,
			status = excluded.status,
			category = excluded.category,
			target_languages = excluded.target_languages,
			target_regions = excluded.target_regions,
			min_followers = excluded.min_followers,
			budget_min = excluded.budget_min,
			budget_max = excluded.budget_max,
			currency = excluded.currency,
			content_requirements = excluded.content_requirements,
			preferred_influencer_types = excluded.preferred_influencer_types,
			updated_at = excluded.updated_at`,
		c.ID, c.BrandID, c.BrandUserID, c.Title, c.Status, c.Category,
		encodeList(c.TargetLanguages), encodeList(c.TargetRegions),
		c.MinFollowers, c.BudgetMin, c.BudgetMax, c.Currency,
		c.ContentRequirements, encodeList(c.PreferredInfluencers),
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.sqlite.UpsertCampaign: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}

func listLimit(limit int) int {
	if limit <= 0 || limit > repository.MaxListLimit {
		return repository.MaxListLimit
	}
	return limit
}
