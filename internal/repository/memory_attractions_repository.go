package repository

import (
	"context"
	"fmt"

	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
)

// MemoryAttractionsRepository インメモリの観光スポットカタログ
// データベース環境変数が未設定の場合のフォールバックとして使用する
type MemoryAttractionsRepository struct {
	attractions []model.Attraction
}

// NewMemoryAttractionsRepository デフォルトカタログ入りのインメモリリポジトリを作成
func NewMemoryAttractionsRepository() repository.AttractionsRepository {
	return &MemoryAttractionsRepository{
		attractions: defaultAttractions(),
	}
}

func (r *MemoryAttractionsRepository) GetByID(ctx context.Context, id string) (*model.Attraction, error) {
	for _, a := range r.attractions {
		if a.ID == id {
			c := a
			return &c, nil
		}
	}
	return nil, fmt.Errorf("スポット ID %s が見つかりません", id)
}

func (r *MemoryAttractionsRepository) ListAttractions(ctx context.Context) ([]model.Attraction, error) {
	result := make([]model.Attraction, len(r.attractions))
	copy(result, r.attractions)
	return result, nil
}

func (r *MemoryAttractionsRepository) GetByCategory(ctx context.Context, category string) ([]model.Attraction, error) {
	var result []model.Attraction
	for _, a := range r.attractions {
		if a.MatchesCategory(category) {
			result = append(result, a)
		}
	}
	return result, nil
}

// defaultAttractions ウッタラーカンド州の代表的な観光スポット
func defaultAttractions() []model.Attraction {
	return []model.Attraction{
		{
			ID:          "1",
			Name:        "Nainital",
			Description: "A beautiful hill station famous for its pristine lake surrounded by mountains.",
			Category:    model.CategoryNature,
			Latitude:    29.3803,
			Longitude:   79.4636,
			Image:       "https://images.unsplash.com/photo-1610715936287-6c2ad208cdbf?w=800",
			Rating:      4.5,
			BestTime:    "March to June",
			Activities:  []string{"Boating", "Trekking", "Photography"},
		},
		{
			ID:          "2",
			Name:        "Rishikesh",
			Description: "The Yoga Capital of the World, known for spiritual experiences and adventure sports.",
			Category:    model.CategorySpiritual,
			Latitude:    30.0869,
			Longitude:   78.2676,
			Image:       "https://images.unsplash.com/photo-1678788166239-b28733f56956?w=800",
			Rating:      4.8,
			BestTime:    "September to November",
			Activities:  []string{"Yoga", "Rafting", "Bungee Jumping"},
		},
		{
			ID:          "3",
			Name:        "Jim Corbett National Park",
			Description: "India's oldest national park, home to Bengal tigers and diverse wildlife.",
			Category:    model.CategoryWildlife,
			Latitude:    29.5312,
			Longitude:   78.7764,
			Image:       "https://images.unsplash.com/photo-1611409518513-f062779abeeb?w=800",
			Rating:      4.6,
			BestTime:    "November to February",
			Activities:  []string{"Safari", "Bird Watching", "Nature Walks"},
		},
		{
			ID:          "4",
			Name:        "Valley of Flowers",
			Description: "A UNESCO World Heritage Site with endemic alpine flowers and stunning landscapes.",
			Category:    model.CategoryNature,
			Latitude:    30.7268,
			Longitude:   79.5967,
			Image:       "https://images.unsplash.com/photo-1530488283937-97dd1667472f?w=800",
			Rating:      4.9,
			BestTime:    "July to September",
			Activities:  []string{"Trekking", "Photography", "Camping"},
		},
		{
			ID:          "5",
			Name:        "Auli",
			Description: "Premier ski destination with panoramic views of Himalayan peaks.",
			Category:    model.CategoryAdventure,
			Latitude:    30.5358,
			Longitude:   79.5967,
			Image:       "https://images.unsplash.com/photo-1641584495098-49cfceabd8e8?w=800",
			Rating:      4.7,
			BestTime:    "December to March",
			Activities:  []string{"Skiing", "Cable Car", "Trekking"},
		},
		{
			ID:          "6",
			Name:        "Mussoorie",
			Description: "Queen of Hills with colonial charm and breathtaking mountain views.",
			Category:    model.CategoryNature,
			Latitude:    30.4598,
			Longitude:   78.0644,
			Image:       "https://images.unsplash.com/photo-1717051041791-47c372799618?w=800",
			Rating:      4.4,
			BestTime:    "April to June",
			Activities:  []string{"Cable Car", "Shopping", "Sightseeing"},
		},
	}
}
