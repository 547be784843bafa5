package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/helper"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
)

// ContextUserKey is where the authenticated user is stored on the gin
// context.
const ContextUserKey = "user"

// RequireAuth verifies the Bearer token, checks that the subject still
// exists and sets the user on the context. Requests without a valid token
// are rejected.
func RequireAuth(users services.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}

		claims, err := helper.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token subject"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Account no longer exists"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuth sets the user when a valid token is present and lets the
// request through anonymously otherwise. Read endpoints use it so viewer
// fields degrade to their null defaults instead of the request failing.
func OptionalAuth(users services.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		claims, err := helper.ParseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			c.Next()
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
