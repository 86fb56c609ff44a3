package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories touch.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&roomModel{},
		&bookingModel{},
	)
}
