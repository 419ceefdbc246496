package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"shop_backend/internal/domain" // Importing domain models
	"shop_backend/internal/store"  // Persistence logic
	"shop_backend/internal/utils"  // Cache and upload helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// ListCategoriesHandler returns all categories
func ListCategoriesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()       // Context for Redis operations
		key := utils.CategoriesCacheKey() // Cache key for the category list
		var categories []domain.Category
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, key, &categories); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"categories": categories, "cached": true})
			return
		}
		// If not in cache, fetch from DB
		categories, err := store.ListCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		_ = utils.SetCache(ctx, rdb, key, categories, catalogCacheTTL)          // Cache the list
		c.JSON(http.StatusOK, gin.H{"categories": categories, "cached": false}) // Return categories
	}
}

// CreateCategoryHandler creates a category from a multipart form. Unlike
// products, the image file is required here.
func CreateCategoryHandler(db *gorm.DB, rdb *redis.Client, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title") // Category title
		// Store the image and build its public URL
		imageURL, err := utils.SaveUploadedImage(c, "image", uploadDir)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"title": title,       // Category title
				"error": err.Error(), // Error message
			}).Error("Image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		// Create the category; empty title or missing image answers 400
		category, err := store.CreateCategory(db, title, imageURL)
		if err != nil {
			status, msg := statusForError(err)
			if status == http.StatusInternalServerError {
				logrus.WithFields(logrus.Fields{
					"title": title,       // Category title
					"error": err.Error(), // Error message
				}).Error("Category creation failed")
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Drop the cached category list
		_ = utils.DeleteCache(context.Background(), rdb, utils.CategoriesCacheKey())
		c.JSON(http.StatusCreated, gin.H{"category": category})
	}
}

// DeleteCategoryHandler deletes a category by ID. Deletion is rejected while
// any product still references the category.
func DeleteCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id") // Parse and validate the ID parameter
		if !ok {
			return
		}
		category, err := store.DeleteCategory(db, id)
		if err != nil {
			status, msg := statusForError(err) // 404 missing, 400 still referenced
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Drop the cached category list and this category's product list
		_ = utils.DeleteCache(context.Background(), rdb,
			utils.CategoriesCacheKey(),    // Full category list
			utils.CategoryProductsKey(id), // Per-category product list
		)
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully", "category": category})
	}
}
