package http

import (
	"matching-srv/internal/matching"
	"matching-srv/internal/middleware"
	"matching-srv/internal/model"
	"matching-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Recommend influencers for a campaign
// @Description Rank candidate influencers against the campaign requirements
// @Tags Matching
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param limit query int false "Max results (default 10, max 50)"
// @Param platform query string false "Only influencers active on this platform"
// @Param min_followers query int false "Only influencers with at least this many followers"
// @Param language query string false "Only influencers speaking this language"
// @Param lang header string false "Reason language (en, ko, ar)"
// @Success 200 {object} recommendInfluencersResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/matches [get]
func (h *handler) RecommendInfluencers(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRecommendInfluencersRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RecommendInfluencers(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.RecommendInfluencers: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRecommendInfluencersResp(ctx, o))
}

// @Summary Score one influencer against a campaign
// @Description Full score breakdown for a single pair, including pairs below the ranking threshold
// @Tags Matching
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param influencer_id path string true "Influencer ID"
// @Success 200 {object} matchResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/matches/{influencer_id} [get]
func (h *handler) ScoreCandidate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processScoreCandidateRequest(c)

	o, err := h.uc.ScoreCandidate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.ScoreCandidate: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMatchResp(ctx, o))
}

// @Summary Export a campaign shortlist
// @Description Upload the current ranking as JSON and return a presigned download URL
// @Tags Matching
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param body body exportShortlistReq false "Export options"
// @Success 200 {object} exportShortlistResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/matches/export [post]
func (h *handler) ExportShortlist(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportShortlistRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ExportShortlist(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.ExportShortlist: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportShortlistResp(o))
}

// @Summary List match runs of a campaign
// @Tags Matching
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 15)"
// @Success 200 {object} listMatchRunsResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/runs [get]
func (h *handler) ListMatchRuns(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListMatchRunsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	runs, pag, err := h.uc.ListMatchRuns(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.ListMatchRuns: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListMatchRunsResp(ctx, runs, pag))
}

// @Summary Recommend campaigns for an influencer
// @Tags Matching
// @Produce json
// @Param influencer_id path string true "Influencer ID"
// @Param limit query int false "Max results (default 20, max 50)"
// @Success 200 {object} recommendCampaignsResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/influencers/{influencer_id}/matches [get]
func (h *handler) RecommendCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRecommendCampaignsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RecommendCampaigns(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.RecommendCampaigns: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRecommendCampaignsResp(ctx, o))
}

// @Summary Score caller-supplied records
// @Description Rank the given candidates against the given campaign without touching storage
// @Tags Matching
// @Accept json
// @Produce json
// @Param body body scoreAdHocReq true "Campaign and candidates"
// @Success 200 {object} scoreAdHocResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/matching/score [post]
func (h *handler) ScoreAdHoc(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreAdHocRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ScoreAdHoc(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "matching.delivery.http.ScoreAdHoc: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, scoreAdHocResp{Matches: h.newMatchResps(ctx, o)})
}

// RecomputeCampaign is called by other services when a campaign changes
// outside the event stream.
func (h *handler) RecomputeCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	run, err := h.uc.RecomputeCampaign(ctx, matching.RecomputeCampaignInput{
		CampaignID: c.Param("campaign_id"),
		Trigger:    model.TriggerManual,
	})
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.RecomputeCampaign: service=%s: %v", middleware.ServiceName(c), err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, recomputeCampaignResp{
		RunID:      run.ID,
		CampaignID: run.CampaignID,
		Ranked:     len(run.Results),
	})
}

func (h *handler) RecomputeOpenCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.RecomputeOpenCampaigns(ctx)
	if err != nil {
		h.l.Errorf(ctx, "matching.delivery.http.RecomputeOpenCampaigns: service=%s: %v", middleware.ServiceName(c), err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, recomputeOpenCampaignsResp{
		Campaigns: s.Campaigns,
		Succeeded: s.Succeeded,
		Failed:    s.Failed,
	})
}
