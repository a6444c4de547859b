package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

const (
	// ContextUserID is the authenticated actor's user id. Handlers read
	// it once and pass it explicitly into services.
	ContextUserID = "auth.user_id"
	// ContextClaims carries the parsed access token claims (for logout).
	ContextClaims = "auth.claims"
)

// Auth validates the bearer access token and stores the actor id on
// the request context.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		claims, err := tokens.Parse(c.Request.Context(), raw, service.TokenTypeAccess)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ActorID returns the authenticated user id set by Auth.
func ActorID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
