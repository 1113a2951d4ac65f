package database

import (
	"gorm.io/gorm"

	"resumebuilder_backend/internal/models"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Resume{},
		&models.Payment{},
	)
}
