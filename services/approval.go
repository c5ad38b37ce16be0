package services

import "backlog/models"

func (s *Service) PendingGames(actor Actor) ([]models.Game, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	var games []models.Game
	err := s.db.Where("approval_status = ?", models.ApprovalPending).
		Order("id ASC").Find(&games).Error
	return games, err
}

// Approve is unconditional: re-approving an approved game is fine, and a
// missing game is a silent no-op.
func (s *Service) Approve(actor Actor, gameID uint) error {
	return s.setApproval(actor, gameID, models.ApprovalApproved)
}

func (s *Service) Reject(actor Actor, gameID uint) error {
	return s.setApproval(actor, gameID, models.ApprovalRejected)
}

func (s *Service) setApproval(actor Actor, gameID uint, status models.GameApprovalStatus) error {
	if !actor.Admin {
		return ErrForbidden
	}
	return s.db.Model(&models.Game{}).
		Where("id = ?", gameID).
		Update("approval_status", status).Error
}
