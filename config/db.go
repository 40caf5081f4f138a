package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/e-Xiua/admin-events-api/models"
)

// DB is the shared gorm handle, set once by Connect at startup.
var DB *gorm.DB

// Connect opens the configured database and migrates the event schema.
func Connect(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		return err
	}
	DB = db
	return nil
}
