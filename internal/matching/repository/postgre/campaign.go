package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"matching-srv/internal/matching/repository"
	"matching-srv/internal/model"

	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (model.Campaign, error) {
	var (
		c         model.Campaign
		brandUser sql.NullString
		currency  sql.NullString
		content   sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.BrandID, &brandUser, &c.Title, &c.Status, &c.Category,
		pq.Array(&c.TargetLanguages), pq.Array(&c.TargetRegions),
		&c.MinFollowers, &c.BudgetMin, &c.BudgetMax, &currency,
		&content, pq.Array(&c.PreferredInfluencers), &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Campaign{}, err
	}
	c.BrandUserID = brandUser.String
	c.Currency = currency.String
	c.ContentRequirements = content.String
	return c, nil
}

// DetailCampaign returns a campaign by id.
func (r *implRepository) DetailCampaign(ctx context.Context, id string) (model.Campaign, error) {
	q, args := r.buildDetailCampaignQuery(id)
	c, err := scanCampaign(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Campaign{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.postgre.DetailCampaign: %v", err)
		return model.Campaign{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return c, nil
}

// ListCampaigns returns campaigns newest first.
func (r *implRepository) ListCampaigns(ctx context.Context, opt repository.ListCampaignsOptions) ([]model.Campaign, error) {
	q, args := r.buildListCampaignsQuery(opt)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.postgre.ListCampaigns: %v", err)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return campaigns, nil
}
