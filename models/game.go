package models

import (
	"gorm.io/gorm"
)

type GameStatus string

const (
	StatusNotStarted GameStatus = "NotStarted"
	StatusInProgress GameStatus = "InProgress"
	StatusCompleted  GameStatus = "Completed"
)

func (s GameStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type GameApprovalStatus string

const (
	ApprovalPending  GameApprovalStatus = "Pending"
	ApprovalApproved GameApprovalStatus = "Approved"
	ApprovalRejected GameApprovalStatus = "Rejected"
)

type Game struct {
	gorm.Model

	Title            string             `gorm:"size:255;index" json:"title"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	PlaytimeMinutes  int                `json:"playtime_minutes"`
	Rating           int                `json:"rating"`
	Status           GameStatus         `gorm:"size:16" json:"status"`
	PlatformID       uint               `gorm:"index" json:"platform_id"`
	GenreID          uint               `gorm:"index" json:"genre_id"`
	OwnerID          string             `gorm:"size:64;index" json:"owner_id"`
	ApprovalStatus   GameApprovalStatus `gorm:"size:16;index" json:"approval_status"`
	OriginalCreator  string             `gorm:"size:64;index" json:"original_creator"`
	Price            int64              `json:"price"`
}

// Progress reports completion in whole percent, floored, capped at 100.
func (g *Game) Progress() int {
	if g.EstimatedMinutes <= 0 {
		return 0
	}
	p := g.PlaytimeMinutes * 100 / g.EstimatedMinutes
	if p > 100 {
		p = 100
	}
	return p
}
