package domain

import "time"

// Product Model
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`       // Primary key
	Title       string    `gorm:"not null" json:"title"`      // Product title
	Price       float64   `gorm:"not null" json:"price"`      // Unit price, never negative
	Description string    `json:"description,omitempty"`      // Optional description
	Image       string    `json:"image,omitempty"`            // Optional image URL
	CategoryID  uint      `gorm:"not null" json:"category_id"` // Foreign key to Category, checked on create
	Category    *Category `json:"category,omitempty"`         // Preloaded category association
	CreatedAt   time.Time `json:"created_at"`                 // Creation time
}
