package services

import (
	"math/rand"

	"gorm.io/gorm"
)

// Actor identifies the caller of an operation. Identity itself is owned by
// an external provider; the service only sees the resolved user id and role.
type Actor struct {
	UserID string
	Admin  bool
}

// CoinFlip reports a single fair toss. Injectable so tests can fix the
// sequence of play rewards.
type CoinFlip func() bool

type Service struct {
	db   *gorm.DB
	flip CoinFlip
}

func New(db *gorm.DB, flip CoinFlip) *Service {
	if flip == nil {
		flip = func() bool { return rand.Intn(2) == 1 }
	}
	return &Service{db: db, flip: flip}
}
