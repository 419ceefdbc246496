package domain

import "time"

// Order status values used by default; the set is open, callers may introduce
// their own values and no transition graph is enforced here.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order Model
type Order struct {
	ID       uint        `gorm:"primaryKey" json:"id"`    // Primary key
	Customer string      `gorm:"not null" json:"customer"` // Customer identifier
	Status   string      `gorm:"not null" json:"status"`  // Open enumeration, defaults to pending
	Date     time.Time   `gorm:"not null" json:"date"`    // Order time, defaults to creation time
	Total    float64     `gorm:"not null" json:"total"`   // Derived from items at creation, frozen
	Items    []OrderItem `json:"items"`                   // Line item snapshots
}

// OrderItem is a frozen line item snapshot: name and price are copied from the
// product at order time and are immune to later product edits.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`       // Primary key
	OrderID   uint    `gorm:"not null" json:"-"`          // Foreign key to Order
	ProductID uint    `gorm:"not null" json:"product_id"` // Non-owning reference into the catalog
	Name      string  `gorm:"not null" json:"name"`       // Product title at order time
	Qty       int     `gorm:"not null" json:"qty"`        // Quantity, at least 1
	Price     float64 `gorm:"not null" json:"price"`      // Unit price at order time
}
