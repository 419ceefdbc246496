package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Token lifetime

	"shop_backend/internal/api"        // Custom package for API handlers
	"shop_backend/internal/config"     // Custom package for configuration
	"shop_backend/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The signing secret must be injected; refuse to start without one
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}
	// Token lifetime; zero issues tokens without expiry
	tokenTTL := time.Duration(cfg.JWTTTLHours) * time.Hour

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.Use(cors.Default())               // Allow cross-origin storefront clients
	r.Static("/uploads", cfg.UploadDir) // Serve uploaded images statically

	// Auth routes
	r.POST("/register", api.RegisterHandler(db))                    // Registration endpoint
	r.POST("/login", api.LoginHandler(db, cfg.JWTSecret, tokenTTL)) // Login endpoint

	// Catalog routes (public)
	r.GET("/products", api.ListProductsHandler(db, redisClient))                        // List products endpoint
	r.GET("/products/:id", api.GetProductHandler(db, redisClient))                      // Single product endpoint
	r.POST("/products", api.CreateProductHandler(db, redisClient, cfg.UploadDir))       // Create product endpoint
	r.DELETE("/products/:id", api.DeleteProductHandler(db, redisClient))                // Delete product endpoint
	r.GET("/categories", api.ListCategoriesHandler(db, redisClient))                    // List categories endpoint
	r.POST("/categories", api.CreateCategoryHandler(db, redisClient, cfg.UploadDir))    // Create category endpoint
	r.DELETE("/categories/:id", api.DeleteCategoryHandler(db, redisClient))             // Delete category endpoint
	r.GET("/categories/:id/products", api.ListCategoryProductsHandler(db, redisClient)) // Products by category endpoint

	// Order creation stays open for checkout without an account
	r.POST("/orders", api.CreateOrderHandler(db)) // Create order endpoint

	// Protected routes (JWT required)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.GET("/orders", api.ListOrdersHandler(db))   // List orders endpoint
	authGroup.GET("/orders/:id", api.GetOrderHandler(db)) // Single order endpoint

	// Cart page additionally requires the account to still exist
	authGroup.GET("/cartpage", middleware.UserAuthMiddleware(db), api.CartPageHandler())

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
