package domain

import "time"

// Category Model
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`  // Primary key
	Title     string    `gorm:"not null" json:"title"` // Category title
	Image     string    `gorm:"not null" json:"image"` // Image URL built at upload time
	CreatedAt time.Time `json:"created_at"`            // Creation time
}
