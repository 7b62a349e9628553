package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryantechlabs/social-kanban/internal/models"
)

func TestInitSeedsDefaultPlatforms(t *testing.T) {
	db := Init(":memory:")

	var platforms []models.Platform
	require.NoError(t, db.Find(&platforms).Error)
	require.Len(t, platforms, 7)

	ids := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		ids[p.ID] = true
		assert.True(t, p.Enabled)
		assert.NotEmpty(t, p.Name)
	}
	for _, want := range []string{"x", "instagram", "youtube", "tiktok", "substack-ai", "substack-rtl", "medium"} {
		assert.True(t, ids[want], "missing platform %s", want)
	}
}

func TestSeedPlatformsIsIdempotent(t *testing.T) {
	db := Init(":memory:")

	require.NoError(t, seedPlatforms(db))

	var count int64
	require.NoError(t, db.Model(&models.Platform{}).Count(&count).Error)
	assert.Equal(t, int64(7), count)
}
