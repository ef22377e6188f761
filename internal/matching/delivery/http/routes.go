package http

import (
	"matching-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/campaigns/:campaign_id/matches", h.RecommendInfluencers)
		api.GET("/campaigns/:campaign_id/matches/:influencer_id", h.ScoreCandidate)
		api.POST("/campaigns/:campaign_id/matches/export", h.ExportShortlist)
		api.GET("/campaigns/:campaign_id/runs", h.ListMatchRuns)
		api.GET("/influencers/:influencer_id/matches", h.RecommendCampaigns)
		api.POST("/matching/score", h.ScoreAdHoc)
	}

	internal := r.Group("/internal/matching")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/campaigns/:campaign_id/recompute", h.RecomputeCampaign)
		internal.POST("/recompute", h.RecomputeOpenCampaigns)
	}
}
