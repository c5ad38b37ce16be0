package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"backlog/models"

	"gorm.io/gorm"
)

// AddComment appends to the thread of an owned game. Writing is gated on
// the exact row; reading spans every copy of the title (see CommentsFor).
func (s *Service) AddComment(actor Actor, gameID uint, content string) (*models.GameComment, error) {
	var game models.Game
	err := s.db.First(&game, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if game.OwnerID != actor.UserID {
		return nil, ErrForbidden
	}

	v := newValidation()
	if strings.TrimSpace(content) == "" {
		v.add("content", "CONTENT_REQUIRED")
	}
	if utf8.RuneCountInString(content) > 1000 {
		v.add("content", "MAX_1000_CHARACTERS")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	comment := models.GameComment{
		UserID:  actor.UserID,
		GameID:  gameID,
		Content: content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentsFor collects the thread shared by every copy of (title, platform),
// newest first. Acquired duplicates of a game all see one conversation.
func (s *Service) CommentsFor(game *models.Game) ([]models.GameComment, error) {
	groupIDs := s.db.Model(&models.Game{}).Select("id").
		Where("title = ? AND platform_id = ?", game.Title, game.PlatformID)

	var comments []models.GameComment
	err := s.db.Where("game_id IN (?)", groupIDs).
		Order("created_at DESC").Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment is admin-only and a no-op when the comment is gone.
func (s *Service) DeleteComment(actor Actor, commentID uint) error {
	if !actor.Admin {
		return ErrForbidden
	}
	return s.db.Delete(&models.GameComment{}, commentID).Error
}
