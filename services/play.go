package services

import (
	"errors"

	"backlog/models"

	"gorm.io/gorm"
)

type PlayResult struct {
	NewPlaytime int               `json:"newPlaytime"`
	NewStatus   models.GameStatus `json:"newStatus"`
	NewProgress int               `json:"newProgress"`
	CoinsGained int64             `json:"coinsGained"`
	NewCurrency int64             `json:"newCurrency"`
}

// Play logs one minute on an owned game and may pay out a coin. Status only
// ever moves forward here: NotStarted to InProgress on the first minute,
// Completed once playtime reaches the estimate. Both can fire in one call
// for a one-minute game.
func (s *Service) Play(actor Actor, gameID uint) (*PlayResult, error) {
	var result PlayResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		err := forUpdate(tx).
			Where("id = ? AND owner_id = ?", gameID, actor.UserID).
			First(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		game.PlaytimeMinutes++
		if game.PlaytimeMinutes > 0 && game.Status == models.StatusNotStarted {
			game.Status = models.StatusInProgress
		}
		if game.PlaytimeMinutes >= game.EstimatedMinutes && game.Status != models.StatusCompleted {
			game.Status = models.StatusCompleted
		}

		err = tx.Model(&models.Game{}).Where("id = ?", game.ID).
			Updates(map[string]any{
				"playtime_minutes": game.PlaytimeMinutes,
				"status":           game.Status,
			}).Error
		if err != nil {
			return err
		}

		wallet, err := walletForUpdate(tx, actor.UserID)
		if err != nil {
			return err
		}
		coins := int64(0)
		if s.flip() {
			coins = 1
			before := wallet.Currency
			wallet.Currency++
			err = tx.Model(&models.UserWallet{}).
				Where("user_id = ?", wallet.UserID).
				Update("currency", wallet.Currency).Error
			if err != nil {
				return err
			}
			err = tx.Create(&models.WalletTransaction{
				UserID:        wallet.UserID,
				TrxType:       "play_reward",
				Amount:        coins,
				BalanceBefore: before,
				BalanceAfter:  wallet.Currency,
				Note:          "Play session reward",
			}).Error
			if err != nil {
				return err
			}
		}

		result = PlayResult{
			NewPlaytime: game.PlaytimeMinutes,
			NewStatus:   game.Status,
			NewProgress: game.Progress(),
			CoinsGained: coins,
			NewCurrency: wallet.Currency,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
