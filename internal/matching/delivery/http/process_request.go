package http

import (
	"errors"
	"io"

	"matching-srv/internal/model"
	"matching-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRecommendInfluencersRequest(c *gin.Context) (recommendInfluencersReq, model.Scope, error) {
	var req recommendInfluencersReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "matching.delivery.http.processRecommendInfluencersRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}
	req.CampaignID = c.Param("campaign_id")

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processRecommendCampaignsRequest(c *gin.Context) (recommendCampaignsReq, model.Scope, error) {
	var req recommendCampaignsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "matching.delivery.http.processRecommendCampaignsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}
	req.InfluencerID = c.Param("influencer_id")

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processScoreCandidateRequest(c *gin.Context) (scoreCandidateReq, model.Scope) {
	req := scoreCandidateReq{
		CampaignID:   c.Param("campaign_id"),
		InfluencerID: c.Param("influencer_id"),
	}
	return req, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processScoreAdHocRequest(c *gin.Context) (scoreAdHocReq, error) {
	var req scoreAdHocReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "matching.delivery.http.processScoreAdHocRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processListMatchRunsRequest(c *gin.Context) (listMatchRunsReq, model.Scope, error) {
	var req listMatchRunsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req.PaginateQuery); err != nil {
		h.l.Warnf(ctx, "matching.delivery.http.processListMatchRunsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}
	req.CampaignID = c.Param("campaign_id")

	return req, scope.GetScopeFromContext(ctx), nil
}

// processExportShortlistRequest accepts an empty body.
func (h *handler) processExportShortlistRequest(c *gin.Context) (exportShortlistReq, model.Scope, error) {
	var req exportShortlistReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(ctx, "matching.delivery.http.processExportShortlistRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}
	req.CampaignID = c.Param("campaign_id")

	return req, scope.GetScopeFromContext(ctx), nil
}
