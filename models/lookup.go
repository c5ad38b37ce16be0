package models

import "gorm.io/gorm"

type Platform struct {
	gorm.Model

	Name  string `gorm:"uniqueIndex;size:64" json:"name"`
	Games []Game `gorm:"foreignKey:PlatformID"`
}

type Genre struct {
	gorm.Model

	Name  string `gorm:"uniqueIndex;size:64" json:"name"`
	Games []Game `gorm:"foreignKey:GenreID"`
}
