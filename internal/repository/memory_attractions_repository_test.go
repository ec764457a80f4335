package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Yatra-App/internal/domain/model"
)

func TestMemoryAttractionsRepository_GetByID(t *testing.T) {
	repo := NewMemoryAttractionsRepository()
	ctx := context.Background()

	attraction, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Rishikesh", attraction.Name)
	assert.Equal(t, model.CategorySpiritual, attraction.Category)

	_, err = repo.GetByID(ctx, "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "見つかりません")
}

func TestMemoryAttractionsRepository_GetByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryAttractionsRepository()
	ctx := context.Background()

	first, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	first.Name = "書き換え"

	second, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Nainital", second.Name)
}

func TestMemoryAttractionsRepository_ListAttractions(t *testing.T) {
	repo := NewMemoryAttractionsRepository()

	attractions, err := repo.ListAttractions(context.Background())
	require.NoError(t, err)
	assert.Len(t, attractions, 6)

	// 全スポットがデフォルトの表示境界内に収まっている
	for _, a := range attractions {
		assert.GreaterOrEqual(t, a.Latitude, 29.0, a.Name)
		assert.LessOrEqual(t, a.Latitude, 31.5, a.Name)
		assert.GreaterOrEqual(t, a.Longitude, 77.5, a.Name)
		assert.LessOrEqual(t, a.Longitude, 81.0, a.Name)
	}
}

func TestMemoryAttractionsRepository_GetByCategory(t *testing.T) {
	repo := NewMemoryAttractionsRepository()
	ctx := context.Background()

	tests := []struct {
		category string
		count    int
	}{
		{model.CategoryAll, 6},
		{model.CategoryNature, 3},
		{model.CategorySpiritual, 1},
		{model.CategoryWildlife, 1},
		{model.CategoryAdventure, 1},
		{model.CategoryCity, 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			attractions, err := repo.GetByCategory(ctx, tt.category)
			require.NoError(t, err)
			assert.Len(t, attractions, tt.count)
		})
	}
}
