package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ryantechlabs/social-kanban/internal/models"
)

// Stats is a dashboard summary over all cards.
type Stats struct {
	Total      int64            `json:"total"`
	Scheduled  int64            `json:"scheduled"`
	Published  int64            `json:"published"`
	ByPlatform map[string]int64 `json:"byPlatform"`
	ByStatus   map[string]int64 `json:"byStatus"`
}

type StatsRepository interface {
	Summary(ctx context.Context) (*Stats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository { return &statsRepository{db: db} }

// Summary recomputes every count on each call. The sub-queries are not run
// inside one transaction, so a write landing between them can skew the
// snapshot slightly.
func (r *statsRepository) Summary(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByPlatform: map[string]int64{},
		ByStatus:   map[string]int64{},
	}

	cards := func() *gorm.DB { return r.db.WithContext(ctx).Model(&models.Card{}) }

	if err := cards().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := cards().Where("status = ?", "scheduled").Count(&stats.Scheduled).Error; err != nil {
		return nil, err
	}
	if err := cards().Where("status = ?", "published").Count(&stats.Published).Error; err != nil {
		return nil, err
	}

	var byPlatform []struct {
		Platform string
		Count    int64
	}
	if err := cards().Select("platform, COUNT(*) AS count").Group("platform").Scan(&byPlatform).Error; err != nil {
		return nil, err
	}
	for _, row := range byPlatform {
		stats.ByPlatform[row.Platform] = row.Count
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := cards().Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	return stats, nil
}
