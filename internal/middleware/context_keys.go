package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// workplaceIDKey is the key used to store the tenant of the request in the Gin context.
const workplaceIDKey = contextKey("workplaceID")

// WorkplaceParam is the route parameter naming the workplace (tenant) whose ledger is addressed.
const WorkplaceParam = "workplace_id"

// WorkplaceScope reads the workplace ID from the route and rejects blank ones.
func WorkplaceScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		workplaceID := strings.TrimSpace(c.Param(WorkplaceParam))
		if workplaceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Workplace ID is required"})
			return
		}
		c.Set(string(workplaceIDKey), workplaceID)
		c.Next()
	}
}

// GetWorkplaceIDFromContext retrieves the workplace ID set by WorkplaceScope.
// It returns the ID and a boolean indicating if it was found.
func GetWorkplaceIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(workplaceIDKey))
	if !exists {
		return "", false
	}
	workplaceID, ok := val.(string)
	return workplaceID, ok && workplaceID != ""
}
