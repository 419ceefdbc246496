package main

import (
	"shop_backend/internal/config" // Custom package for configuration
	"shop_backend/internal/db"     // Custom package for database migration
)

// Main function to run database migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	// Setup Data Source Name (DSN) for the database connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db.Migrate(dsn) // Run the migration
}
