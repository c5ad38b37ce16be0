package services

import (
	"errors"
	"testing"

	"backlog/database"
	"backlog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestPlayRunsToCompletion(t *testing.T) {
	svc, _ := newTestService(t)
	actor := Actor{UserID: "u1"}
	game := mustCreate(t, svc, actor, "Long Haul") // estimated 100

	var last *PlayResult
	for i := 0; i < 100; i++ {
		res, err := svc.Play(actor, game.ID)
		if err != nil {
			t.Fatalf("play %d: %v", i+1, err)
		}
		// Status never regresses across calls.
		if last != nil && rank(res.NewStatus) < rank(last.NewStatus) {
			t.Fatalf("status regressed from %s to %s", last.NewStatus, res.NewStatus)
		}
		last = res
	}

	if last.NewPlaytime != 100 {
		t.Errorf("playtime = %d, want 100", last.NewPlaytime)
	}
	if last.NewStatus != models.StatusCompleted {
		t.Errorf("status = %s, want Completed", last.NewStatus)
	}
	if last.NewProgress != 100 {
		t.Errorf("progress = %d, want 100", last.NewProgress)
	}
}

func rank(s models.GameStatus) int {
	switch s {
	case models.StatusNotStarted:
		return 0
	case models.StatusInProgress:
		return 1
	default:
		return 2
	}
}

func TestPlayFirstMinuteStartsProgress(t *testing.T) {
	svc, _ := newTestService(t)
	actor := Actor{UserID: "u1"}
	game := mustCreate(t, svc, actor, "Slow Burn")

	res, err := svc.Play(actor, game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.NewStatus != models.StatusInProgress {
		t.Errorf("status after first minute = %s, want InProgress", res.NewStatus)
	}
	if res.NewProgress != 1 {
		t.Errorf("progress = %d, want 1 (floor of 1/100)", res.NewProgress)
	}
}

func TestPlayShortGameSkipsInProgress(t *testing.T) {
	svc, _ := newTestService(t)
	actor := Actor{UserID: "u1"}

	game, err := svc.Create(actor, CreateGameInput{
		Title:            "One Minute Wonder",
		EstimatedMinutes: 1,
		PlatformID:       1,
		GenreID:          1,
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.Play(actor, game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.NewStatus != models.StatusCompleted {
		t.Errorf("one-minute game after one play = %s, want Completed", res.NewStatus)
	}
}

func TestPlayNotOwnedIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	game := mustCreate(t, svc, Actor{UserID: "u1"}, "Private")

	if _, err := svc.Play(Actor{UserID: "u2"}, game.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Play(Actor{UserID: "u1"}, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing game: err = %v, want ErrNotFound", err)
	}
}

func TestPlayCoinRewardFollowsInjectedFlips(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatal(err)
	}

	flips := []bool{true, false, true, true, false}
	i := 0
	svc := New(db, func() bool {
		f := flips[i%len(flips)]
		i++
		return f
	})

	actor := Actor{UserID: "u1"}
	game := mustCreate(t, svc, actor, "Grinder")

	wantCurrency := int64(0)
	for n, f := range flips {
		res, err := svc.Play(actor, game.ID)
		if err != nil {
			t.Fatalf("play %d: %v", n+1, err)
		}
		wantGained := int64(0)
		if f {
			wantGained = 1
			wantCurrency++
		}
		if res.CoinsGained != wantGained {
			t.Errorf("play %d: coinsGained = %d, want %d", n+1, res.CoinsGained, wantGained)
		}
		if res.NewCurrency != wantCurrency {
			t.Errorf("play %d: currency = %d, want %d", n+1, res.NewCurrency, wantCurrency)
		}
	}

	var rewards int64
	db.Model(&models.WalletTransaction{}).
		Where("user_id = ? AND trx_type = ?", "u1", "play_reward").
		Count(&rewards)
	if rewards != 3 {
		t.Errorf("reward ledger rows = %d, want 3", rewards)
	}
}
