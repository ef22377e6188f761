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

func scanInfluencer(row rowScanner) (model.Influencer, error) {
	var (
		inf      model.Influencer
		userID   sql.NullString
		location sql.NullString
	)
	err := row.Scan(
		&inf.ID, &userID, &inf.DisplayName,
		pq.Array(&inf.Expertise), pq.Array(&inf.Languages), &location,
		&inf.Stats.TotalCampaigns, &inf.Stats.CompletedCampaigns,
		&inf.Stats.AvgRating, &inf.Stats.CompletionRate, &inf.CreatedAt,
	)
	if err != nil {
		return model.Influencer{}, err
	}
	inf.UserID = userID.String
	inf.Location = location.String
	return inf, nil
}

// DetailInfluencer returns an influencer with accounts and portfolio.
func (r *implRepository) DetailInfluencer(ctx context.Context, id string) (model.Influencer, error) {
	q, args := r.buildDetailInfluencerQuery(id)
	inf, err := scanInfluencer(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Influencer{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.postgre.DetailInfluencer: %v", err)
		return model.Influencer{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	list := []model.Influencer{inf}
	if err := r.attachDetails(ctx, list); err != nil {
		return model.Influencer{}, err
	}
	return list[0], nil
}

// ListInfluencers returns the filtered candidate pool with accounts and portfolio.
func (r *implRepository) ListInfluencers(ctx context.Context, opt repository.ListInfluencersOptions) ([]model.Influencer, error) {
	q, args := r.buildListInfluencersQuery(opt)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.postgre.ListInfluencers: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	influencers := make([]model.Influencer, 0)
	for rows.Next() {
		inf, err := scanInfluencer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		influencers = append(influencers, inf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	if err := r.attachDetails(ctx, influencers); err != nil {
		return nil, err
	}
	return influencers, nil
}

// attachDetails loads accounts and portfolio for every influencer in two queries.
func (r *implRepository) attachDetails(ctx context.Context, influencers []model.Influencer) error {
	if len(influencers) == 0 {
		return nil
	}
	ids := make([]string, len(influencers))
	index := make(map[string]int, len(influencers))
	for i, inf := range influencers {
		ids[i] = inf.ID
		index[inf.ID] = i
	}

	q, args := r.buildAccountsQuery(ids)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.postgre.attachDetails: accounts: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	for rows.Next() {
		var (
			owner  string
			handle sql.NullString
			a      model.SocialAccount
		)
		if err := rows.Scan(&owner, &a.Platform, &handle, &a.Followers, &a.AvgViews, &a.EngagementRate); err != nil {
			rows.Close()
			return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		a.Handle = handle.String
		if i, ok := index[owner]; ok {
			influencers[i].SocialAccounts = append(influencers[i].SocialAccounts, a)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	q, args = r.buildPortfolioQuery(ids)
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "matching.repository.postgre.attachDetails: portfolio: %v", err)
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
	return rows.Err()
}
