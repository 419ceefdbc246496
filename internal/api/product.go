package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // ID parsing
	"time"     // Cache TTL

	"shop_backend/internal/domain" // Importing domain models
	"shop_backend/internal/store"  // Persistence logic
	"shop_backend/internal/utils"  // Cache and upload helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// catalogCacheTTL bounds how stale cached catalog reads can get
const catalogCacheTTL = 60 * time.Second

// parseID parses a numeric path parameter. Returns false after answering 400
// so handlers can bail out in one line.
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// invalidateProductCache drops every catalog key touched by a product write
func invalidateProductCache(rdb *redis.Client, product *domain.Product) {
	ctx := context.Background() // Context for Redis operations
	_ = utils.DeleteCache(ctx, rdb,
		utils.ProductsCacheKey(),                      // Full product list
		utils.ProductCacheKey(product.ID),             // Single product
		utils.CategoryProductsKey(product.CategoryID), // Per-category list
	)
}

// ListProductsHandler returns all products with their categories
func ListProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()     // Context for Redis operations
		key := utils.ProductsCacheKey() // Cache key for the product list
		var products []domain.Product
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, key, &products); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"products": products, "cached": true})
			return
		}
		// If not in cache, fetch from DB
		products, err := store.ListProducts(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		_ = utils.SetCache(ctx, rdb, key, products, catalogCacheTTL)        // Cache the list
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false}) // Return product list
	}
}

// GetProductHandler returns a single product by ID
func GetProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id") // Parse and validate the ID parameter
		if !ok {
			return
		}
		ctx := context.Background()      // Context for Redis operations
		key := utils.ProductCacheKey(id) // Cache key for this product
		var cached domain.Product
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"product": cached, "cached": true})
			return
		}
		// If not in cache, fetch from DB
		product, err := store.GetProduct(db, id)
		if err != nil {
			status, msg := statusForError(err) // 404 when the product is missing
			c.JSON(status, gin.H{"error": msg})
			return
		}
		_ = utils.SetCache(ctx, rdb, key, product, catalogCacheTTL)        // Cache the product
		c.JSON(http.StatusOK, gin.H{"product": product, "cached": false}) // Return product
	}
}

// CreateProductHandler creates a product from a multipart form. The image
// file is optional; when present it is stored and its public URL recorded.
func CreateProductHandler(db *gorm.DB, rdb *redis.Client, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")             // Product title
		description := c.PostForm("description") // Optional description
		// Price must parse as a number
		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		// Category reference must parse as an ID
		categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		// Store the optional image and build its public URL
		imageURL, err := utils.SaveUploadedImage(c, "image", uploadDir)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"title": title,       // Product title
				"error": err.Error(), // Error message
			}).Error("Image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		// Create the product with a strict category reference check
		product, err := store.CreateProduct(db, title, price, uint(categoryID), description, imageURL)
		if err != nil {
			status, msg := statusForError(err)
			if status == http.StatusInternalServerError {
				logrus.WithFields(logrus.Fields{
					"title": title,       // Product title
					"error": err.Error(), // Error message
				}).Error("Product creation failed")
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		invalidateProductCache(rdb, product) // Drop stale catalog cache entries
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

// DeleteProductHandler deletes a product by ID and returns the deleted record
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id") // Parse and validate the ID parameter
		if !ok {
			return
		}
		product, err := store.DeleteProduct(db, id)
		if err != nil {
			status, msg := statusForError(err) // 404 when the product is missing
			c.JSON(status, gin.H{"error": msg})
			return
		}
		invalidateProductCache(rdb, product) // Drop stale catalog cache entries
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "product": product})
	}
}

// ListCategoryProductsHandler returns the products of one category. An empty
// category answers 200 with an empty list, not 404.
func ListCategoryProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id") // Parse and validate the ID parameter
		if !ok {
			return
		}
		ctx := context.Background()          // Context for Redis operations
		key := utils.CategoryProductsKey(id) // Cache key for this category's products
		products := []domain.Product{}       // Empty slice is a valid result
		// Try to get from cache
		if found, err := utils.GetCache(ctx, rdb, key, &products); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"products": products, "cached": true})
			return
		}
		// If not in cache, fetch from DB
		products, err := store.ListProductsByCategory(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		_ = utils.SetCache(ctx, rdb, key, products, catalogCacheTTL)        // Cache the list
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false}) // Return products
	}
}
