package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// CartPageHandler is the protected sample endpoint: it echoes the identity
// the auth gate attached to the request. Reaching it at all proves the token
// was verified and the account still exists.
func CartPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user") // Resolved user from UserAuthMiddleware
		// Check if the user was attached by the middleware chain
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Return the cart page payload with the authenticated user
		c.JSON(http.StatusOK, gin.H{"message": "Cart page details", "user": user})
	}
}
