package http

import (
	"context"
	"time"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
	"matching-srv/pkg/paginator"
	"matching-srv/pkg/response"
)

// ----------- Requests -----------

type recommendInfluencersReq struct {
	CampaignID   string `uri:"campaign_id"`
	Limit        int    `form:"limit"`
	Platform     string `form:"platform"`
	MinFollowers int64  `form:"min_followers"`
	Language     string `form:"language"`
}

func (r recommendInfluencersReq) toInput() matching.RecommendInfluencersInput {
	return matching.RecommendInfluencersInput{
		CampaignID: r.CampaignID,
		Limit:      r.Limit,
		Filters: matching.CandidateFilters{
			Platform:     r.Platform,
			MinFollowers: r.MinFollowers,
			Language:     r.Language,
		},
	}
}

type recommendCampaignsReq struct {
	InfluencerID string `uri:"influencer_id"`
	Limit        int    `form:"limit"`
}

func (r recommendCampaignsReq) toInput() matching.RecommendCampaignsInput {
	return matching.RecommendCampaignsInput{
		InfluencerID: r.InfluencerID,
		Limit:        r.Limit,
	}
}

type scoreCandidateReq struct {
	CampaignID   string
	InfluencerID string
}

func (r scoreCandidateReq) toInput() matching.ScoreCandidateInput {
	return matching.ScoreCandidateInput{
		CampaignID:   r.CampaignID,
		InfluencerID: r.InfluencerID,
	}
}

type scoreAdHocReq struct {
	Campaign   engine.CampaignRequirements `json:"campaign"`
	Candidates []engine.InfluencerProfile  `json:"candidates"`
	Limit      int                         `json:"limit"`
}

func (r scoreAdHocReq) toInput() matching.ScoreAdHocInput {
	return matching.ScoreAdHocInput{
		Campaign:   r.Campaign,
		Candidates: r.Candidates,
		Limit:      r.Limit,
	}
}

type listMatchRunsReq struct {
	CampaignID string
	paginator.PaginateQuery
}

func (r listMatchRunsReq) toInput() matching.ListMatchRunsInput {
	return matching.ListMatchRunsInput{
		CampaignID: r.CampaignID,
		Paginate:   r.PaginateQuery,
	}
}

type exportShortlistReq struct {
	CampaignID string `json:"-"`
	Limit      int    `json:"limit"`
}

func (r exportShortlistReq) toInput() matching.ExportShortlistInput {
	return matching.ExportShortlistInput{
		CampaignID: r.CampaignID,
		Limit:      r.Limit,
	}
}

// ----------- Responses -----------

type breakdownResp struct {
	ContentSimilarity float64 `json:"content_similarity"`
	AudienceMatch     float64 `json:"audience_fit"`
	PerformanceScore  float64 `json:"performance_history"`
	LocationMatch     float64 `json:"location_fit"`
	BudgetFit         float64 `json:"budget_fit"`
	LanguageMatch     float64 `json:"language_fit"`
}

type matchResp struct {
	CandidateID string        `json:"candidate_id"`
	TotalScore  int           `json:"total_score"`
	Breakdown   breakdownResp `json:"breakdown"`
	Reasons     []string      `json:"reasons"`
}

type recommendInfluencersResp struct {
	CampaignID      string      `json:"campaign_id"`
	Matches         []matchResp `json:"matches"`
	CandidatesTotal int         `json:"candidates_total"`
	Cached          bool        `json:"cached"`
}

type recommendCampaignsResp struct {
	InfluencerID   string      `json:"influencer_id"`
	Matches        []matchResp `json:"matches"`
	CampaignsTotal int         `json:"campaigns_total"`
	Cached         bool        `json:"cached"`
}

type scoreAdHocResp struct {
	Matches []matchResp `json:"matches"`
}

type matchResultResp struct {
	InfluencerID string   `json:"influencer_id"`
	TotalScore   int      `json:"total_score"`
	Reasons      []string `json:"reasons"`
}

type matchRunResp struct {
	ID              string            `json:"id"`
	CampaignID      string            `json:"campaign_id"`
	Trigger         string            `json:"trigger"`
	CandidatesTotal int               `json:"candidates_total"`
	Results         []matchResultResp `json:"results"`
	CreatedAt       response.DateTime `json:"created_at"`
}

type listMatchRunsResp struct {
	Runs      []matchRunResp              `json:"runs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type exportShortlistResp struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	ExpiresAt  string `json:"expires_at"`
	Count      int    `json:"count"`
}

type recomputeCampaignResp struct {
	RunID      string `json:"run_id"`
	CampaignID string `json:"campaign_id"`
	Ranked     int    `json:"ranked"`
}

type recomputeOpenCampaignsResp struct {
	Campaigns int `json:"campaigns"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

func (h *handler) newMatchResps(ctx context.Context, scores []engine.MatchingScore) []matchResp {
	out := make([]matchResp, len(scores))
	for i, s := range scores {
		out[i] = h.newMatchResp(ctx, s)
	}
	return out
}

func (h *handler) newMatchResp(ctx context.Context, s engine.MatchingScore) matchResp {
	return matchResp{
		CandidateID: s.CandidateID,
		TotalScore:  s.TotalScore,
		Breakdown: breakdownResp{
			ContentSimilarity: s.Breakdown.Content,
			AudienceMatch:     s.Breakdown.Audience,
			PerformanceScore:  s.Breakdown.Performance,
			LocationMatch:     s.Breakdown.Location,
			BudgetFit:         s.Breakdown.Budget,
			LanguageMatch:     s.Breakdown.Language,
		},
		Reasons: h.reasons.TranslateAll(ctx, s.Reasons),
	}
}

func (h *handler) newRecommendInfluencersResp(ctx context.Context, o matching.RecommendInfluencersOutput) recommendInfluencersResp {
	return recommendInfluencersResp{
		CampaignID:      o.CampaignID,
		Matches:         h.newMatchResps(ctx, o.Matches),
		CandidatesTotal: o.CandidatesTotal,
		Cached:          o.CacheHit,
	}
}

func (h *handler) newRecommendCampaignsResp(ctx context.Context, o matching.RecommendCampaignsOutput) recommendCampaignsResp {
	return recommendCampaignsResp{
		InfluencerID:   o.InfluencerID,
		Matches:        h.newMatchResps(ctx, o.Matches),
		CampaignsTotal: o.CampaignsTotal,
		Cached:         o.CacheHit,
	}
}

func (h *handler) newListMatchRunsResp(ctx context.Context, runs []model.MatchRun, pag paginator.Paginator) listMatchRunsResp {
	out := make([]matchRunResp, len(runs))
	for i, run := range runs {
		results := make([]matchResultResp, len(run.Results))
		for j, r := range run.Results {
			results[j] = matchResultResp{
				InfluencerID: r.InfluencerID,
				TotalScore:   r.TotalScore,
				Reasons:      h.reasons.TranslateAll(ctx, r.Reasons),
			}
		}
		out[i] = matchRunResp{
			ID:              run.ID,
			CampaignID:      run.CampaignID,
			Trigger:         run.Trigger,
			CandidatesTotal: run.CandidatesTotal,
			Results:         results,
			CreatedAt:       response.DateTime(run.CreatedAt),
		}
	}
	return listMatchRunsResp{
		Runs:      out,
		Paginator: pag.ToResponse(),
	}
}

func (h *handler) newExportShortlistResp(o matching.ExportShortlistOutput) exportShortlistResp {
	return exportShortlistResp{
		ObjectName: o.ObjectName,
		URL:        o.URL,
		ExpiresAt:  o.ExpiresAt.Format(time.RFC3339),
		Count:      o.Count,
	}
}
