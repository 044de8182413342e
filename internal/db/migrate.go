package db

import (
	"fmt"

	"github.com/feedbackhq/feedbackhq/internal/models"
	"gorm.io/gorm"
)

// Migrate runs schema migrations for all persisted models.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if err := conn.AutoMigrate(
		&models.Admin{},
		&models.Feedback{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}
