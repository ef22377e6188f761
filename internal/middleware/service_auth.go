package middleware

import (
	"strings"

	"matching-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceKeyHeader  = "X-Service-Key"
	serviceNameCtxKey = "service_name"
)

// ServiceAuth authenticates internal callers. The X-Service-Key header carries
// "serviceName:key" encrypted with the shared encrypter key; key is checked
// against the bcrypt hash configured for serviceName.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sealed := c.GetHeader(serviceKeyHeader)
		if sealed == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		plain, err := m.encrypter.Decrypt(sealed)
		if err != nil {
			m.l.Warnf(ctx, "middleware.ServiceAuth: decrypt failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		name, key, ok := strings.Cut(plain, ":")
		if !ok || name == "" || key == "" {
			m.l.Warnf(ctx, "middleware.ServiceAuth: malformed key (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Key values are never logged.
		hash, exists := m.serviceKeys[name]
		if !exists || !m.encrypter.CompareSecret(key, hash) {
			m.l.Warnf(ctx, "middleware.ServiceAuth: rejected service %s", name)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(serviceNameCtxKey, name)
		c.Next()
	}
}

// ServiceName returns the internal caller authenticated by ServiceAuth.
func ServiceName(c *gin.Context) string {
	return c.GetString(serviceNameCtxKey)
}
