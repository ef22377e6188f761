package http

import (
	"matching-srv/internal/matching"
	"matching-srv/internal/middleware"
	"matching-srv/pkg/discord"
	"matching-srv/pkg/locale"
	"matching-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      matching.UseCase
	discord discord.IDiscord
	reasons locale.Catalog
}

func New(l log.Logger, uc matching.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
		reasons: reasonCatalog,
	}
}
