package middleware

import (
	"matching-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale stores the response language in the request context. The "lang"
// header wins over Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("lang")
		if header == "" {
			header = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), locale.ParseLang(header))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
