package services

import (
	"errors"
	"testing"

	"backlog/models"
)

func TestUserStats(t *testing.T) {
	svc, db := newTestService(t)
	actor := Actor{UserID: "u1"}

	g1 := mustCreate(t, svc, actor, "Done")
	g2 := mustCreate(t, svc, actor, "Playing")
	mustCreate(t, svc, Actor{UserID: "u2"}, "Not Mine")

	db.Model(&models.Game{}).Where("id = ?", g1.ID).Updates(map[string]any{
		"status":           models.StatusCompleted,
		"playtime_minutes": 100,
		"rating":           8,
	})
	db.Model(&models.Game{}).Where("id = ?", g2.ID).Updates(map[string]any{
		"status":           models.StatusInProgress,
		"playtime_minutes": 40,
		"rating":           6,
	})

	stats, err := svc.UserStats(actor)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalGames != 2 {
		t.Errorf("total = %d, want 2", stats.TotalGames)
	}
	if stats.CompletedGames != 1 {
		t.Errorf("completed = %d, want 1", stats.CompletedGames)
	}
	if stats.AverageRating != 7 {
		t.Errorf("average rating = %v, want 7", stats.AverageRating)
	}
	if stats.TotalPlaytime != 140 {
		t.Errorf("total playtime = %d, want 140", stats.TotalPlaytime)
	}
}

func TestUserStatsIgnoreUnratedInAverage(t *testing.T) {
	svc, db := newTestService(t)
	actor := Actor{UserID: "u1"}

	rated := mustCreate(t, svc, actor, "Rated")
	mustCreate(t, svc, actor, "Unrated")
	db.Model(&models.Game{}).Where("id = ?", rated.ID).Update("rating", 10)

	stats, err := svc.UserStats(actor)
	if err != nil {
		t.Fatal(err)
	}
	if stats.AverageRating != 10 {
		t.Errorf("average rating = %v, want 10 (unrated excluded)", stats.AverageRating)
	}
}

func TestAdminStats(t *testing.T) {
	svc, _ := newTestService(t)
	adm := Actor{UserID: "admin", Admin: true}

	a := mustCreate(t, svc, Actor{UserID: "u1"}, "A")
	mustCreate(t, svc, Actor{UserID: "u1"}, "B")
	mustCreate(t, svc, Actor{UserID: "u2"}, "C")
	mustApprove(t, svc, a.ID)

	stats, err := svc.AdminStats(adm)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalGames != 3 {
		t.Errorf("total = %d, want 3", stats.TotalGames)
	}
	if stats.ApprovedGames != 1 {
		t.Errorf("approved = %d, want 1", stats.ApprovedGames)
	}
	if stats.Users != 2 {
		t.Errorf("users = %d, want 2 distinct owners", stats.Users)
	}

	if _, err := svc.AdminStats(Actor{UserID: "u1"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin stats as user: err = %v, want ErrForbidden", err)
	}
}
