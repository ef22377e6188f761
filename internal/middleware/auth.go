package middleware

import (
	"strings"

	"matching-srv/pkg/response"
	"matching-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth verifies the access token and stores the caller scope in the request context.
// The token is read from the Authorization header first, then from the auth cookie.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if tokenString == "" {
			cookie, err := c.Cookie(m.cookieConfig.Name)
			if err != nil || cookie == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			tokenString = cookie
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
