package api

import (
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"shop_backend/internal/store" // Persistence logic
	"shop_backend/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`     // Name must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
			return
		}
		// Create the user with a hashed password
		user, err := store.RegisterUser(db, req.Name, req.Email, req.Password)
		if err != nil {
			status, msg := statusForError(err) // Map store error to HTTP status
			if status == http.StatusInternalServerError {
				// Log the unexpected failure with context
				logrus.WithFields(logrus.Fields{
					"email": req.Email,   // Attempted email
					"error": err.Error(), // Error message
				}).Error("Registration failed")
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Return the new user, password hash excluded by the model
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token bound to the
// user's identity. Unknown email answers 404, wrong password answers 401.
func LoginHandler(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		// Verify credentials against the stored hash
		user, err := store.AuthenticateUser(db, req.Email, req.Password)
		if err != nil {
			status, msg := statusForError(err) // 404 unknown email, 401 bad password
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Generate JWT token for the authenticated user
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret, tokenTTL)
		if err != nil {
			// If token generation fails, return internal server error
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Token generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the user and token in the response
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "message": "Login successful"})
	}
}
