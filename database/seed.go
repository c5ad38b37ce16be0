package database

import (
	"backlog/models"

	"gorm.io/gorm"
)

// Seed fills the lookup tables on an empty database. Safe to run on every
// start: each block is guarded by an existence check.
func Seed(db *gorm.DB) error {
	var platforms int64
	if err := db.Model(&models.Platform{}).Count(&platforms).Error; err != nil {
		return err
	}
	if platforms == 0 {
		err := db.Create(&[]models.Platform{
			{Name: "PC"},
			{Name: "Xbox"},
			{Name: "PlayStation"},
		}).Error
		if err != nil {
			return err
		}
	}

	var genres int64
	if err := db.Model(&models.Genre{}).Count(&genres).Error; err != nil {
		return err
	}
	if genres == 0 {
		err := db.Create(&[]models.Genre{
			{Name: "RPG"},
			{Name: "Action"},
			{Name: "Strategy"},
		}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
