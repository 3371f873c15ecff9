package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL driver
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite driver

	"lucito/internal/models"
)

// Open opens the database connection for the configured driver and runs
// schema migration.
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the marketplace schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.CartItem{},
		&models.Vendor{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
	).Error
}

// Close closes the database connection.
func Close(db *gorm.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
