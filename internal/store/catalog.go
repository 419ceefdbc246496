package store

import (
	"errors" // Error wrapping and comparison
	"fmt"    // Error formatting

	"shop_backend/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CreateCategory persists a new category. Title and image are both required.
func CreateCategory(db *gorm.DB, title, image string) (*domain.Category, error) {
	if title == "" || image == "" {
		return nil, fmt.Errorf("%w: title and image are required", ErrValidation)
	}
	category := domain.Category{Title: title, Image: image}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories.
func ListCategories(db *gorm.DB) ([]domain.Category, error) {
	var categories []domain.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateProduct persists a new product. The category reference is checked
// strictly: a product is never created pointing at a category that does not
// exist. Description and image are optional.
func CreateProduct(db *gorm.DB, title string, price float64, categoryID uint, description, image string) (*domain.Product, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	// Price must be non-negative
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	// Referential check: the category must resolve before anything is written
	var category domain.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", ErrValidation, categoryID)
		}
		return nil, err // Backing-store failure
	}
	product := domain.Product{
		Title:       title,       // Product title
		Price:       price,       // Unit price
		Description: description, // Optional description
		Image:       image,       // Optional image URL
		CategoryID:  categoryID,  // Resolved category reference
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	product.Category = &category
	return &product, nil
}

// GetProduct returns a single product with its category preloaded.
func GetProduct(db *gorm.DB, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

// ListProducts returns all products with their categories preloaded.
func ListProducts(db *gorm.DB) ([]domain.Product, error) {
	var products []domain.Product
	if err := db.Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsByCategory returns the products referencing the given category.
// An empty result is not an error; callers decide how to present it.
func ListProductsByCategory(db *gorm.DB, categoryID uint) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := db.Preload("Category").Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DeleteProduct removes a product and returns the deleted record.
func DeleteProduct(db *gorm.DB, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	if err := db.Delete(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteCategory removes a category and returns the deleted record. Deletion
// is guarded: while any product still references the category the delete is
// rejected with ErrCategoryInUse, so product category references never dangle.
func DeleteCategory(db *gorm.DB, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return nil, err
	}
	// Delete-guard: count referencing products inside the same transaction
	// scope as the delete
	var count int64
	if err := db.Model(&domain.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %d product(s) still reference category %d", ErrCategoryInUse, count, id)
	}
	if err := db.Delete(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
