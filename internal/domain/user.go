package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`           // Primary key
	Name      string    `gorm:"not null" json:"name"`           // Display name
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // Unique email, exact-match lookup key
	Password  string    `gorm:"not null" json:"-"`              // Bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`                     // Registration time
}
