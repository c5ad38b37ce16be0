package services

import (
	"errors"
	"strings"

	"backlog/models"

	"gorm.io/gorm"
)

const pageSize = 5

type CreateGameInput struct {
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	PlatformID       uint   `json:"platform_id"`
	GenreID          uint   `json:"genre_id"`
	Price            int64  `json:"price"`
}

type EditGameInput struct {
	Title            string            `json:"title"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	PlaytimeMinutes  int               `json:"playtime_minutes"`
	Rating           int               `json:"rating"`
	Status           models.GameStatus `json:"status"`
	PlatformID       uint              `json:"platform_id"`
	GenreID          uint              `json:"genre_id"`
	Price            int64             `json:"price"`
}

type ListFilters struct {
	Search     string
	PlatformID uint
	GenreID    uint
	Status     models.GameStatus
	Sort       string
}

// titleContains builds a case-sensitive substring predicate. LIKE is
// case-insensitive for ASCII on sqlite, so that path uses instr instead.
func titleContains(query *gorm.DB, search string) *gorm.DB {
	if query.Dialector.Name() == "sqlite" {
		return query.Where("instr(title, ?) > 0", search)
	}
	return query.Where("strpos(title, ?) > 0", search)
}

func (s *Service) validateRefs(v *ValidationError, platformID, genreID uint) {
	var platform models.Platform
	if err := s.db.First(&platform, platformID).Error; err != nil {
		v.add("platform_id", "UNKNOWN_PLATFORM")
	}
	var genre models.Genre
	if err := s.db.First(&genre, genreID).Error; err != nil {
		v.add("genre_id", "UNKNOWN_GENRE")
	}
}

func (s *Service) Create(actor Actor, in CreateGameInput) (*models.Game, error) {
	v := newValidation()
	if strings.TrimSpace(in.Title) == "" {
		v.add("title", "TITLE_REQUIRED")
	}
	if in.EstimatedMinutes < 1 || in.EstimatedMinutes > 99999 {
		v.add("estimated_minutes", "MUST_BE_BETWEEN_1_AND_99999")
	}
	if in.Price < 0 {
		v.add("price", "MUST_NOT_BE_NEGATIVE")
	}
	s.validateRefs(v, in.PlatformID, in.GenreID)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	game := models.Game{
		Title:            in.Title,
		EstimatedMinutes: in.EstimatedMinutes,
		Status:           models.StatusNotStarted,
		PlatformID:       in.PlatformID,
		GenreID:          in.GenreID,
		OwnerID:          actor.UserID,
		ApprovalStatus:   models.ApprovalPending,
		OriginalCreator:  actor.UserID,
		Price:            in.Price,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// Edit rewrites an owned entry and sends it back through review. Acquired
// copies stay immutable: only the original creator may edit.
func (s *Service) Edit(actor Actor, gameID uint, in EditGameInput) (*models.Game, error) {
	var game models.Game
	err := s.db.Where("id = ? AND owner_id = ?", gameID, actor.UserID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if game.OriginalCreator != actor.UserID {
		return nil, ErrForbidden
	}

	v := newValidation()
	if strings.TrimSpace(in.Title) == "" {
		v.add("title", "TITLE_REQUIRED")
	}
	if in.EstimatedMinutes < 1 || in.EstimatedMinutes > 99999 {
		v.add("estimated_minutes", "MUST_BE_BETWEEN_1_AND_99999")
	}
	if in.PlaytimeMinutes < 0 || in.PlaytimeMinutes > 99999 {
		v.add("playtime_minutes", "MUST_BE_BETWEEN_0_AND_99999")
	}
	if in.Rating != 0 && (in.Rating < 1 || in.Rating > 10) {
		v.add("rating", "MUST_BE_BETWEEN_1_AND_10")
	}
	if in.Status == "" {
		// Omitted status means keep the current one.
		in.Status = game.Status
	} else if !in.Status.Valid() {
		v.add("status", "UNKNOWN_STATUS")
	}
	if in.Price < 0 {
		v.add("price", "MUST_NOT_BE_NEGATIVE")
	}
	s.validateRefs(v, in.PlatformID, in.GenreID)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	res := s.db.Model(&models.Game{}).
		Where("id = ? AND owner_id = ?", gameID, actor.UserID).
		Updates(map[string]any{
			"title":             in.Title,
			"estimated_minutes": in.EstimatedMinutes,
			"playtime_minutes":  in.PlaytimeMinutes,
			"rating":            in.Rating,
			"status":            in.Status,
			"platform_id":       in.PlatformID,
			"genre_id":          in.GenreID,
			"price":             in.Price,
			"approval_status":   models.ApprovalPending,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Row vanished between the read and the write.
		return nil, ErrNotFound
	}

	if err := s.db.First(&game, gameID).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// Delete is an owner-scoped no-op when the row is already gone.
func (s *Service) Delete(actor Actor, gameID uint) error {
	return s.db.Where("id = ? AND owner_id = ?", gameID, actor.UserID).
		Delete(&models.Game{}).Error
}

func (s *Service) Get(actor Actor, gameID uint) (*models.Game, []models.GameComment, error) {
	var game models.Game
	err := s.db.Where("id = ? AND owner_id = ?", gameID, actor.UserID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.CommentsFor(&game)
	if err != nil {
		return nil, nil, err
	}
	return &game, comments, nil
}

// List pages through the caller's backlog, five entries per page.
func (s *Service) List(actor Actor, f ListFilters, page int) ([]models.Game, int, error) {
	if page < 1 {
		page = 1
	}

	query := s.db.Model(&models.Game{}).Where("owner_id = ?", actor.UserID)
	if f.Search != "" {
		query = titleContains(query, f.Search)
	}
	if f.PlatformID != 0 {
		query = query.Where("platform_id = ?", f.PlatformID)
	}
	if f.GenreID != 0 {
		query = query.Where("genre_id = ?", f.GenreID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	totalPages := int((total + pageSize - 1) / pageSize)

	order := "title ASC"
	if f.Sort == "title_desc" {
		order = "title DESC"
	}

	var games []models.Game
	err := query.Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&games).Error
	if err != nil {
		return nil, 0, err
	}
	return games, totalPages, nil
}
