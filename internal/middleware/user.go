package middleware

import (
	"net/http" // HTTP status codes

	"shop_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// UserAuthMiddleware re-resolves the token subject against the users table on
// each request. Tokens are never revoked server-side, so this is the only
// check that catches a deleted account holding a still-valid token. Must run
// after JWTAuthMiddleware.
func UserAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// Account no longer exists, the token is useless
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}
		c.Set("user", user) // Store the resolved user for handlers
		c.Next()            // Proceed to the next handler
	}
}
