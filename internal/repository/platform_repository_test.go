package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryantechlabs/social-kanban/internal/models"
)

func TestListEnabledSkipsDisabledPlatforms(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlatformRepository(db)

	platforms := []models.Platform{
		{ID: "x", Name: "X / Twitter", Icon: "𝕏", Color: "#1da1f2", Enabled: true},
		{ID: "medium", Name: "Medium", Icon: "📝", Color: "#00ab6c", Enabled: true},
	}
	require.NoError(t, db.Create(&platforms).Error)
	// Column default is true, so flip via an explicit update.
	require.NoError(t, db.Model(&models.Platform{}).Where("id = ?", "medium").Update("enabled", false).Error)

	enabled, err := repo.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "x", enabled[0].ID)
	assert.True(t, enabled[0].Enabled)
}
