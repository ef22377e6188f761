package postgre

import (
	"fmt"
	"strings"

	"matching-srv/internal/matching/repository"

	"github.com/lib/pq"
)

const influencerColumns = `i.id, i.user_id, i.display_name, i.expertise, i.languages, i.location,
	i.total_campaigns, i.completed_campaigns, i.avg_rating, i.completion_rate, i.created_at`

func (r *implRepository) buildDetailInfluencerQuery(id string) (string, []any) {
	return `SELECT ` + influencerColumns + ` FROM influencers i WHERE i.id = $1`, []any{id}
}

func (r *implRepository) buildListInfluencersQuery(opt repository.ListInfluencersOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.Platform != "" {
		args = append(args, opt.Platform)
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM influencer_social_accounts a WHERE a.influencer_id = i.id AND lower(a.platform) = lower($%d))`,
			len(args)))
	}
	if opt.MinFollowers > 0 {
		args = append(args, opt.MinFollowers)
		conds = append(conds, fmt.Sprintf(
			`(SELECT COALESCE(SUM(a.followers), 0) FROM influencer_social_accounts a WHERE a.influencer_id = i.id) >= $%d`,
			len(args)))
	}
	if opt.Language != "" {
		args = append(args, opt.Language)
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM unnest(i.languages) AS l(lang) WHERE lower(l.lang) = lower($%d))`,
			len(args)))
	}
	if opt.After != nil {
		args = append(args, opt.After.CreatedAt, opt.After.ID)
		conds = append(conds, fmt.Sprintf(`(i.created_at, i.id) > ($%d, $%d)`, len(args)-1, len(args)))
	}

	q := `SELECT ` + influencerColumns + ` FROM influencers i`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	// Stable order keeps tie-breaking deterministic and backs the keyset cursor.
	q += " ORDER BY i.created_at ASC, i.id ASC"

	args = append(args, listLimit(opt.Limit))
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	return q, args
}

func (r *implRepository) buildAccountsQuery(ids []string) (string, []any) {
	return `SELECT influencer_id, platform, handle, followers, avg_views, engagement_rate
		FROM influencer_social_accounts
		WHERE influencer_id = ANY($1)
		ORDER BY influencer_id, platform`, []any{pq.Array(ids)}
}

func (r *implRepository) buildPortfolioQuery(ids []string) (string, []any) {
	return `SELECT influencer_id, category, performance
		FROM influencer_portfolio
		WHERE influencer_id = ANY($1)
		ORDER BY influencer_id, created_at`, []any{pq.Array(ids)}
}
