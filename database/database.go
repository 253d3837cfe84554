package database

import (
	"fmt"

	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database. sqlite is the default so the app
// runs without external services; mysql is used in deployment.
func Connect(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate creates the five entity tables. Customers must migrate first so
// the cascading foreign keys on orders and reservations can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Waiter{},
		&models.Dish{},
		&models.Order{},
		&models.Reservation{},
	)
}
