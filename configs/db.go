package configs

import (
	"fmt"

	"canteen/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store selected by DB_DRIVER. TranslateError is on
// so unique-index violations surface as gorm.ErrDuplicatedKey on every
// driver; the transaction ledger relies on that.
func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.Employee{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.Transaction{},
		&entity.WeeklyMenu{},
		&entity.Feedback{},
	)
}
