package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soham2710/bulemo/config"
	"github.com/soham2710/bulemo/utils"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	ContextIsAdmin       = "isAdmin"
	ContextAdminID       = "adminID"
	ContextAdminUsername = "adminUsername"
)

// RequireAdmin is the single authorization predicate for every protected
// route. Missing, malformed, expired, and wrong-role tokens all answer the
// same 401 so the response never reveals which check failed.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := adminClaims(c)
		if claims == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth marks admin requests on public read routes so drafts stay
// visible to editors and invisible to everyone else. It never denies.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := adminClaims(c); claims != nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// IsAdmin reports whether the current request carries a verified admin token.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}

func setIdentity(c *gin.Context, claims *utils.SessionClaims) {
	c.Set(ContextIsAdmin, true)
	c.Set(ContextAdminID, claims.Subject)
	c.Set(ContextAdminUsername, claims.Username)
}

func adminClaims(c *gin.Context) *utils.SessionClaims {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return nil
	}
	claims, err := utils.ParseSessionToken(config.JWTSecret, tokenString)
	if err != nil || claims.Role != "admin" {
		return nil
	}
	return claims
}

func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(config.SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
