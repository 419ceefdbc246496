package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Pagination parsing
	"time"     // Timestamps for logging

	"shop_backend/internal/store" // Persistence logic

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for order creation. Deliberately narrow: items carry only a
// product reference and a quantity, so client-supplied prices or totals have
// no field to bind to and are silently dropped.
type CreateOrderRequest struct {
	Customer string            `json:"customer" binding:"required"` // Customer identifier
	Status   string            `json:"status"`                      // Optional, defaults to pending
	Items    []store.OrderLine `json:"items" binding:"required"`    // Line items
}

// CreateOrderHandler builds an order from product references, computing the
// total server-side from catalog prices.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer and items are required"})
			return
		}
		// Resolve products, snapshot line items, compute the total
		order, err := store.CreateOrder(db, req.Customer, req.Status, req.Items)
		if err != nil {
			status, msg := statusForError(err)
			if status == http.StatusInternalServerError {
				// Log the unexpected failure with context
				logrus.WithFields(logrus.Fields{
					"customer": req.Customer, // Customer identifier
					"error":    err.Error(),  // Error message
				}).Error("Order creation failed")
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Log the successful order
		logrus.WithFields(logrus.Fields{
			"order_id":  order.ID,                        // New order ID
			"customer":  order.Customer,                  // Customer identifier
			"total":     order.Total,                     // Computed total
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Order created")
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// ListOrdersHandler returns orders most-recent-first, paginated
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page
		pageSize := 20 // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size if valid
			}
		}
		orders, total, err := store.ListOrders(db, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		c.JSON(http.StatusOK, gin.H{
			"orders":      orders,     // List of orders
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total orders
			"total_pages": totalPages, // Total pages
		})
	}
}

// GetOrderHandler returns a single order with its line items
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id") // Parse and validate the ID parameter
		if !ok {
			return
		}
		order, err := store.GetOrder(db, id)
		if err != nil {
			status, msg := statusForError(err) // 404 when the order is missing
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
