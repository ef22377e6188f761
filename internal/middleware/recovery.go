package middleware

import (
	"matching-srv/pkg/discord"
	"matching-srv/pkg/log"
	"matching-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into 500 responses and reports them to Discord.
// Handlers rely on this for errors their mapError does not know.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorf(c.Request.Context(), "middleware.Recovery: %v | %s %s",
					rec, c.Request.Method, c.Request.URL.Path)
				response.PanicError(c, rec, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
