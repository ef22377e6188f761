package postgre

import (
	"fmt"
	"strings"

	"matching-srv/internal/matching/repository"
)

const campaignColumns = `id, brand_id, brand_user_id, title, status, category,
	target_languages, target_regions, min_followers, budget_min, budget_max, currency,
	content_requirements, preferred_influencer_types, created_at, updated_at`

func (r *implRepository) buildDetailCampaignQuery(id string) (string, []any) {
	return `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`, []any{id}
}

func (r *implRepository) buildListCampaignsQuery(opt repository.ListCampaignsOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.Status != "" {
		args = append(args, opt.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	q := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id ASC"

	args = append(args, listLimit(opt.Limit))
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	return q, args
}

func listLimit(limit int) int {
	if limit <= 0 || limit > repository.MaxListLimit {
		return repository.MaxListLimit
	}
	return limit
}
