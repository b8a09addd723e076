// Package database owns schema migration and the development seed
// data.
package database

import (
	"aurora-backend/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Customer{},
		&models.Appointment{},
		&models.WorkingHours{},
		&models.SystemConfig{},
	)
}
