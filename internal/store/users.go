package store

import (
	"errors" // Error wrapping and comparison
	"fmt"    // Error formatting

	"shop_backend/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterUser creates a new user with a bcrypt-hashed password. The email is
// matched exactly (case-sensitive) against existing users before insert.
func RegisterUser(db *gorm.DB, name, email, password string) (*domain.User, error) {
	// All three fields are required
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	// Check for an existing user with the same email first so the caller gets
	// a clean duplicate error instead of a driver-specific constraint failure
	var existing domain.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: email %q", ErrDuplicate, email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err // Backing-store failure
	}
	// Hash the password, plain text is never stored
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{Name: name, Email: email, Password: string(hash)}
	// The unique index on email is the backstop for concurrent registrations
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: email %q", ErrDuplicate, email)
	}
	return &user, nil
}

// FindUserByEmail looks up a user by exact email match.
func FindUserByEmail(db *gorm.DB, email string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, email)
		}
		return nil, err // Backing-store failure
	}
	return &user, nil
}

// AuthenticateUser verifies the supplied password against the stored hash.
// Returns ErrNotFound for an unknown email and ErrBadCredentials on mismatch,
// so login can answer 404 and 401 respectively.
func AuthenticateUser(db *gorm.DB, email, password string) (*domain.User, error) {
	user, err := FindUserByEmail(db, email)
	if err != nil {
		return nil, err
	}
	// Constant-time comparison against the bcrypt hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}
