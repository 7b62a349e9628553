package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/ryantechlabs/social-kanban/internal/models"
)

// ErrCardNotFound is returned when no card row matches the requested id.
var ErrCardNotFound = errors.New("card not found")

// CreateCardParams carries the creation input. ID may be left empty to have
// the repository mint one.
type CreateCardParams struct {
	ID          string
	Platform    string
	Status      string
	Title       string
	Description string
	Type        string
	Date        *string
	Priority    string
}

// UpdateCardParams carries a partial update. Nil fields are left unchanged;
// a pointer to the empty string is an explicit overwrite.
type UpdateCardParams struct {
	Platform    *string
	Status      *string
	Title       *string
	Description *string
	Type        *string
	Date        *string
	Priority    *string
}

type CardRepository interface {
	ListAll(ctx context.Context) ([]models.Card, error)
	ListByPlatform(ctx context.Context, platform string) ([]models.Card, error)
	ListByStatus(ctx context.Context, status string) ([]models.Card, error)
	GetByID(ctx context.Context, id string) (*models.Card, error)
	Create(ctx context.Context, params CreateCardParams) (*models.Card, error)
	Update(ctx context.Context, id string, params UpdateCardParams) (*models.Card, error)
	Move(ctx context.Context, id, platform, status string) error
	Delete(ctx context.Context, id string) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository { return &cardRepository{db: db} }

func (r *cardRepository) ListAll(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cards).Error
	return cards, err
}

func (r *cardRepository) ListByPlatform(ctx context.Context, platform string) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.WithContext(ctx).
		Where("platform = ?", platform).
		Order("created_at DESC").
		Find(&cards).Error
	return cards, err
}

func (r *cardRepository) ListByStatus(ctx context.Context, status string) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&cards).Error
	return cards, err
}

func (r *cardRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) Create(ctx context.Context, params CreateCardParams) (*models.Card, error) {
	card := models.Card{
		ID:          params.ID,
		Platform:    params.Platform,
		Status:      params.Status,
		Title:       params.Title,
		Description: params.Description,
		Type:        params.Type,
		Date:        params.Date,
		Priority:    params.Priority,
	}
	if card.ID == "" {
		card.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if card.Type == "" {
		card.Type = "post"
	}
	if card.Priority == "" {
		card.Priority = "medium"
	}

	if err := r.db.WithContext(ctx).Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) Update(ctx context.Context, id string, params UpdateCardParams) (*models.Card, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if params.Platform != nil {
		updates["platform"] = *params.Platform
	}
	if params.Status != nil {
		updates["status"] = *params.Status
	}
	if params.Title != nil {
		updates["title"] = *params.Title
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Type != nil {
		updates["type"] = *params.Type
	}
	if params.Date != nil {
		updates["date"] = *params.Date
	}
	if params.Priority != nil {
		updates["priority"] = *params.Priority
	}

	result := r.db.WithContext(ctx).Model(&models.Card{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCardNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *cardRepository) Move(ctx context.Context, id, platform, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Card{}).Where("id = ?", id).Updates(map[string]any{
		"platform":   platform,
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
