package models

import "gorm.io/gorm"

type GameComment struct {
	gorm.Model

	UserID  string `gorm:"size:64;index" json:"user_id"`
	GameID  uint   `gorm:"index" json:"game_id"`
	Content string `gorm:"size:1000" json:"content"`
}
