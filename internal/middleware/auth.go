package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/service"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/response"
)

const (
	// TokenCookieName is the session token cookie set at login
	TokenCookieName = "token"

	// Context keys populated after token verification
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
	ContextName   = "name"
)

// RequireAuth verifies the session token on every request. The token is
// read from the session cookie first, then from a bearer Authorization
// header. Every failure mode is the same 401: missing token, garbage
// token, expired token. Clients treat it as "not logged in".
func RequireAuth(creds service.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := creds.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, string(claims.Role))
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// RequireRole gates access to a single role, compared case-insensitively.
// Denial is indistinguishable from being unauthenticated.
func RequireRole(role string) gin.HandlerFunc {
	return RequireAnyRole(role)
}

// RequireAnyRole gates access to a set of roles, compared
// case-insensitively. An empty set grants access to any verified session.
func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		current := c.GetString(ContextRole)
		for _, role := range roles {
			if strings.EqualFold(role, current) {
				c.Next()
				return
			}
		}

		response.Unauthorized(c, "Unauthorized")
		c.Abort()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	const bearerPrefix = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return authHeader[len(bearerPrefix):]
	}
	return ""
}
