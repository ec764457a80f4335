package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Yatra-App/internal/database"
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
)

type SupabaseAttractionsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseAttractionsRepository(client *database.SupabaseClient) repository.AttractionsRepository {
	return &SupabaseAttractionsRepository{
		client: client,
	}
}

func (r *SupabaseAttractionsRepository) GetByID(ctx context.Context, id string) (*model.Attraction, error) {
	var attractions []model.Attraction
	data, count, err := r.client.GetClient().From("attractions").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &attractions); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(attractions) == 0 {
		return nil, fmt.Errorf("スポット ID %s が見つかりません", id)
	}

	return &attractions[0], nil
}

func (r *SupabaseAttractionsRepository) ListAttractions(ctx context.Context) ([]model.Attraction, error) {
	var attractions []model.Attraction
	data, count, err := r.client.GetClient().From("attractions").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &attractions); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	return attractions, nil
}

func (r *SupabaseAttractionsRepository) GetByCategory(ctx context.Context, category string) ([]model.Attraction, error) {
	if category == "" || category == model.CategoryAll {
		return r.ListAttractions(ctx)
	}

	var attractions []model.Attraction
	data, count, err := r.client.GetClient().From("attractions").
		Select("*", "exact", false).
		Eq("category", category).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &attractions); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	return attractions, nil
}
