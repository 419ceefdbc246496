package store

import (
	"errors" // Error wrapping and comparison
	"fmt"    // Error formatting
	"time"   // Order timestamps

	"shop_backend/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// OrderLine is what a caller may supply per line item: a product reference and
// a quantity. Names, prices and the order total are always resolved from the
// catalog here; client-supplied amounts are never accepted.
type OrderLine struct {
	ProductID uint `json:"product_id" binding:"required"` // Product reference
	Qty       int  `json:"qty" binding:"required"`        // Quantity, at least 1
}

// CreateOrder builds an order from the given lines. Each product reference is
// resolved, its title and unit price are frozen into the line item snapshot,
// and the total is computed server-side. The whole write runs in a single
// transaction so a dangling reference creates nothing.
func CreateOrder(db *gorm.DB, customer, status string, lines []OrderLine) (*domain.Order, error) {
	if customer == "" {
		return nil, fmt.Errorf("%w: customer is required", ErrValidation)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrValidation)
	}
	// Status is an open enumeration; empty means pending
	if status == "" {
		status = domain.OrderStatusPending
	}
	order := domain.Order{
		Customer: customer,   // Customer identifier
		Status:   status,     // Caller-driven status
		Date:     time.Now(), // Defaults to creation time
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			if line.Qty < 1 {
				return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
			}
			// Resolve the product; a missing reference aborts the whole order
			var product domain.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d does not exist", ErrValidation, line.ProductID)
				}
				return err // Backing-store failure
			}
			// Snapshot name and price at order time
			order.Items = append(order.Items, domain.OrderItem{
				ProductID: product.ID,    // Non-owning catalog reference
				Name:      product.Title, // Title frozen at order time
				Qty:       line.Qty,      // Quantity
				Price:     product.Price, // Unit price frozen at order time
			})
			order.Total += product.Price * float64(line.Qty) // Server-side total
		}
		// Persist order and items together
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders most-recent-first by date, paginated, along with
// the total count.
func ListOrders(db *gorm.DB, page, pageSize int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	var total int64
	if err := db.Model(&domain.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	orders := []domain.Order{}
	if err := db.Preload("Items").
		Order("date desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetOrder returns a single order with its line items loaded.
func GetOrder(db *gorm.DB, id uint) (*domain.Order, error) {
	var order domain.Order
	if err := db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}
