package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/middlewares"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
)

// currentUser returns the authenticated user set by RequireAuth, or nil for
// anonymous requests that passed through OptionalAuth.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(middlewares.ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// respondError maps service error kinds onto HTTP status codes. Anything
// unrecognized is a storage failure surfaced as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
