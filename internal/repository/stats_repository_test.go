package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryEmptyBoard(t *testing.T) {
	repo := NewStatsRepository(setupTestDB(t))

	stats, err := repo.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Scheduled)
	assert.Zero(t, stats.Published)
	assert.Empty(t, stats.ByPlatform)
	assert.Empty(t, stats.ByStatus)
}

func TestSummaryCounts(t *testing.T) {
	db := setupTestDB(t)
	cards := NewCardRepository(db)
	stats := NewStatsRepository(db)
	ctx := context.Background()

	seed := []CreateCardParams{
		{ID: "c1", Platform: "x", Status: "idea", Title: "a"},
		{ID: "c2", Platform: "x", Status: "scheduled", Title: "b"},
		{ID: "c3", Platform: "instagram", Status: "scheduled", Title: "c"},
		{ID: "c4", Platform: "youtube", Status: "published", Title: "d"},
		{ID: "c5", Platform: "x", Status: "published", Title: "e"},
	}
	for _, params := range seed {
		_, err := cards.Create(ctx, params)
		require.NoError(t, err)
	}

	got, err := stats.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5), got.Total)
	assert.Equal(t, int64(2), got.Scheduled)
	assert.Equal(t, int64(2), got.Published)

	assert.Equal(t, map[string]int64{"x": 3, "instagram": 1, "youtube": 1}, got.ByPlatform)
	assert.Equal(t, map[string]int64{"idea": 1, "scheduled": 2, "published": 2}, got.ByStatus)

	var platformSum, statusSum int64
	for _, n := range got.ByPlatform {
		platformSum += n
	}
	for _, n := range got.ByStatus {
		statusSum += n
	}
	assert.Equal(t, got.Total, platformSum)
	assert.Equal(t, got.Total, statusSum)
}
