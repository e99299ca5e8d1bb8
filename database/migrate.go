// database/migrate.go
package database

import (
	"pds-backend/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SignupUser{},
		&models.Employee{},
		&models.MswcGodown{},
		&models.SubGodown{},
		&models.Owner{},
		&models.Grain{},
		&models.Truck{},
		&models.Packaging{},
		&models.Category{},
		&models.Scheme{},
	)
}
