package services

import (
	"testing"

	"backlog/database"
	"backlog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB returns a migrated, seeded in-memory sqlite DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// newTestService wires a service over a fresh DB with a never-winning coin
// flip; tests that exercise rewards inject their own sequence.
func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return New(db, func() bool { return false }), db
}

func mustCreate(t *testing.T, svc *Service, actor Actor, title string) *models.Game {
	t.Helper()
	game, err := svc.Create(actor, CreateGameInput{
		Title:            title,
		EstimatedMinutes: 100,
		PlatformID:       1,
		GenreID:          1,
	})
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return game
}

func mustApprove(t *testing.T, svc *Service, gameID uint) {
	t.Helper()
	if err := svc.Approve(Actor{UserID: "admin", Admin: true}, gameID); err != nil {
		t.Fatalf("approve game %d: %v", gameID, err)
	}
}
