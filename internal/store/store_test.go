package store

import (
	"testing"

	"shop_backend/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// The database is named after the test so parallel tests do not share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
	))
	return db
}

// seedCategory inserts a category and returns it.
func seedCategory(t *testing.T, db *gorm.DB, title string) *domain.Category {
	t.Helper()
	c, err := CreateCategory(db, title, "http://localhost/uploads/"+title+".png")
	require.NoError(t, err)
	return c
}

// seedProduct inserts a product under the given category and returns it.
func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, categoryID uint) *domain.Product {
	t.Helper()
	p, err := CreateProduct(db, title, price, categoryID, "", "")
	require.NoError(t, err)
	return p
}
