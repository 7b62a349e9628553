package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ryantechlabs/social-kanban/internal/models"
)

type PlatformRepository interface {
	ListEnabled(ctx context.Context) ([]models.Platform, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository { return &platformRepository{db: db} }

func (r *platformRepository) ListEnabled(ctx context.Context) ([]models.Platform, error) {
	var platforms []models.Platform
	err := r.db.WithContext(ctx).Where("enabled = ?", true).Find(&platforms).Error
	return platforms, err
}
