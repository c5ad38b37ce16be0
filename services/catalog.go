package services

import (
	"encoding/json"
	"errors"

	"backlog/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// creatorShare is the fraction of the price paid out to the original
// creator; the rest is the platform take.
var creatorShare = decimal.NewFromFloat(0.7)

// forUpdate applies a row lock on stores that support it. SQLite is a
// single-writer engine and rejects the clause, so it is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// walletForUpdate fetches a locked wallet row, creating a zero-balance one
// on first use.
func walletForUpdate(tx *gorm.DB, userID string) (*models.UserWallet, error) {
	var w models.UserWallet
	err := forUpdate(tx).Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w = models.UserWallet{UserID: userID, Currency: 0}
		if err := tx.Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func ownsTitle(tx *gorm.DB, userID, title string, platformID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Game{}).
		Where("owner_id = ? AND title = ? AND platform_id = ?", userID, title, platformID).
		Count(&count).Error
	return count > 0, err
}

// cloneGame copies a catalog entry into a fresh owned row. The original
// creator id is carried over so royalties keep flowing to the author even
// through chains of re-acquisition.
func cloneGame(src *models.Game, ownerID string) models.Game {
	return models.Game{
		Title:            src.Title,
		EstimatedMinutes: src.EstimatedMinutes,
		PlaytimeMinutes:  0,
		Rating:           0,
		Status:           models.StatusNotStarted,
		PlatformID:       src.PlatformID,
		GenreID:          src.GenreID,
		OwnerID:          ownerID,
		ApprovalStatus:   models.ApprovalApproved,
		OriginalCreator:  src.OriginalCreator,
		Price:            src.Price,
	}
}

// Catalog returns all approved games deduplicated by (title, platform); the
// lowest id wins when several users submitted the same title. The viewer's
// wallet balance rides along for display.
func (s *Service) Catalog(actor Actor) ([]models.Game, int64, error) {
	var approved []models.Game
	err := s.db.Where("approval_status = ?", models.ApprovalApproved).
		Order("id ASC").Find(&approved).Error
	if err != nil {
		return nil, 0, err
	}

	type key struct {
		title      string
		platformID uint
	}
	seen := map[key]bool{}
	games := make([]models.Game, 0, len(approved))
	for _, g := range approved {
		k := key{g.Title, g.PlatformID}
		if seen[k] {
			continue
		}
		seen[k] = true
		games = append(games, g)
	}

	var wallet models.UserWallet
	currency := int64(0)
	if err := s.db.Where("user_id = ?", actor.UserID).First(&wallet).Error; err == nil {
		currency = wallet.Currency
	}
	return games, currency, nil
}

func (s *Service) catalogSource(tx *gorm.DB, gameID uint) (*models.Game, error) {
	var src models.Game
	err := tx.First(&src, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if src.ApprovalStatus != models.ApprovalApproved {
		return nil, ErrNotFound
	}
	return &src, nil
}

// AcquireFree adds a catalog game to the caller's backlog at no cost.
func (s *Service) AcquireFree(actor Actor, catalogGameID uint) (*models.Game, error) {
	var clone models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		src, err := s.catalogSource(tx, catalogGameID)
		if err != nil {
			return err
		}
		owned, err := ownsTitle(tx, actor.UserID, src.Title, src.PlatformID)
		if err != nil {
			return err
		}
		if owned {
			return ErrConflict
		}
		clone = cloneGame(src, actor.UserID)
		return tx.Create(&clone).Error
	})
	if err != nil {
		return nil, err
	}
	return &clone, nil
}

type PurchaseResult struct {
	Game       *models.Game `json:"game"`
	NewBalance int64        `json:"new_balance"`
	RefID      string       `json:"ref_id"`
}

// Buy settles a catalog purchase: debit the buyer, pay the original creator
// their share, clone the game. The three effects commit or roll back
// together.
func (s *Service) Buy(actor Actor, catalogGameID uint) (*PurchaseResult, error) {
	var result PurchaseResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		src, err := s.catalogSource(tx, catalogGameID)
		if err != nil {
			return err
		}
		owned, err := ownsTitle(tx, actor.UserID, src.Title, src.PlatformID)
		if err != nil {
			return err
		}
		if owned {
			return ErrConflict
		}

		buyer, err := walletForUpdate(tx, actor.UserID)
		if err != nil {
			return err
		}
		if buyer.Currency < src.Price {
			return ErrInsufficientFunds
		}

		refID := uuid.New().String()
		detail, _ := json.Marshal(map[string]any{
			"game_id": src.ID,
			"title":   src.Title,
		})
		royalty := decimal.NewFromInt(src.Price).Mul(creatorShare).Floor().IntPart()

		buyerBefore := buyer.Currency
		buyer.Currency -= src.Price
		if err := tx.Model(&models.UserWallet{}).
			Where("user_id = ?", buyer.UserID).
			Update("currency", buyer.Currency).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WalletTransaction{
			UserID:        buyer.UserID,
			TrxType:       "purchase",
			Amount:        src.Price,
			BalanceBefore: buyerBefore,
			BalanceAfter:  buyer.Currency,
			Note:          "Game purchase",
			RefID:         refID,
			Detail:        detail,
		}).Error; err != nil {
			return err
		}

		// When the buyer is also the original creator this reads back the
		// just-debited balance and credits the same row.
		creator, err := walletForUpdate(tx, src.OriginalCreator)
		if err != nil {
			return err
		}
		creatorBefore := creator.Currency
		creator.Currency += royalty
		if err := tx.Model(&models.UserWallet{}).
			Where("user_id = ?", creator.UserID).
			Update("currency", creator.Currency).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WalletTransaction{
			UserID:        creator.UserID,
			TrxType:       "royalty",
			Amount:        royalty,
			BalanceBefore: creatorBefore,
			BalanceAfter:  creator.Currency,
			Note:          "Creator revenue share",
			RefID:         refID,
			Detail:        detail,
		}).Error; err != nil {
			return err
		}

		clone := cloneGame(src, actor.UserID)
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		newBalance := buyer.Currency
		if creator.UserID == buyer.UserID {
			newBalance = creator.Currency
		}
		result = PurchaseResult{Game: &clone, NewBalance: newBalance, RefID: refID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
