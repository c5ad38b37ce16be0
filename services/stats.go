package services

import "backlog/models"

type UserStats struct {
	TotalGames     int64   `json:"total_games"`
	CompletedGames int64   `json:"completed_games"`
	AverageRating  float64 `json:"average_rating"`
	TotalPlaytime  int64   `json:"total_playtime"`
}

type AdminStats struct {
	TotalGames    int64 `json:"total_games"`
	ApprovedGames int64 `json:"approved_games"`
	Users         int64 `json:"users"`
}

func (s *Service) UserStats(actor Actor) (*UserStats, error) {
	var stats UserStats
	err := s.db.Model(&models.Game{}).Where("owner_id = ?", actor.UserID).
		Count(&stats.TotalGames).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Game{}).
		Where("owner_id = ? AND status = ?", actor.UserID, models.StatusCompleted).
		Count(&stats.CompletedGames).Error
	if err != nil {
		return nil, err
	}
	// Unrated entries (rating 0, e.g. fresh acquisitions) stay out of the
	// average.
	err = s.db.Model(&models.Game{}).
		Where("owner_id = ? AND rating > 0", actor.UserID).
		Select("COALESCE(AVG(rating), 0)").Scan(&stats.AverageRating).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Game{}).Where("owner_id = ?", actor.UserID).
		Select("COALESCE(SUM(playtime_minutes), 0)").Scan(&stats.TotalPlaytime).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminStats counts users as distinct game owners; the identity table
// itself lives with the external provider.
func (s *Service) AdminStats(actor Actor) (*AdminStats, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	var stats AdminStats
	err := s.db.Model(&models.Game{}).Count(&stats.TotalGames).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Game{}).
		Where("approval_status = ?", models.ApprovalApproved).
		Count(&stats.ApprovedGames).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Game{}).
		Distinct("owner_id").Count(&stats.Users).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
