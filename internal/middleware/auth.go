package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/auth"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
)

const principalKey = "principal"

// unauthorizedBody is the fixed 401 payload returned by the access gate.
var unauthorizedBody = gin.H{"message": "You are not authorized"}

// skipPaths are served without touching the token at all.
var skipPaths = map[string]bool{
	"/":       true,
	"/health": true,
}

// PrincipalResolver runs globally. It turns a valid bearer token into a
// loaded user attached to the request; on any failure the request simply
// proceeds unauthenticated and the gate decides later. The resolver itself
// never rejects.
func PrincipalResolver(tokens *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] || strings.HasPrefix(path, "/swagger/") {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "path", path)
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID())
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token subject has no user",
				"user_id", claims.UserID(), "path", path)
			c.Next()
			return
		}

		c.Set(principalKey, user)
		c.Request = c.Request.WithContext(
			logger.WithUserID(c.Request.Context(), user.ID))

		c.Next()
	}
}

// RequireAuth is the access gate for protected route groups. Requests without
// a resolved principal are rejected with a fixed body, leaking nothing about
// why resolution failed.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal resolved for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
