package guard

import (
	"log/slog"
	"net/http"

	"stayhub/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const ctxPrincipalKey = "principal"

// Middleware admits or rejects inbound requests. The decision is always a
// 401 with an opaque reason; remote error types never cross this boundary.
type Middleware struct {
	checker AuthChecker
}

func NewMiddleware(checker AuthChecker) *Middleware {
	return &Middleware{checker: checker}
}

func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := cookie.GetAuthToken(c)

		// Fail fast: no credential means no round trip to the auth service.
		if credential == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		principal, err := m.checker.Check(c.Request.Context(), credential)
		if err != nil {
			slog.Warn("credential check failed in auth guard", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired credentials",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return Principal{}, false
	}

	p, ok := v.(Principal)
	return p, ok
}
