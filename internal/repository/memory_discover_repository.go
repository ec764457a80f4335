package repository

import (
	"context"

	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
)

// MemoryDiscoverRepository キュレーション済みのイベント・モデルコースを返すリポジトリ
type MemoryDiscoverRepository struct {
	events []model.Event
	routes []model.TravelRoute
}

// NewMemoryDiscoverRepository デフォルトデータ入りのリポジトリを作成
func NewMemoryDiscoverRepository() repository.DiscoverRepository {
	return &MemoryDiscoverRepository{
		events: defaultEvents(),
		routes: defaultTravelRoutes(),
	}
}

func (r *MemoryDiscoverRepository) ListEvents(ctx context.Context) ([]model.Event, error) {
	result := make([]model.Event, len(r.events))
	copy(result, r.events)
	return result, nil
}

func (r *MemoryDiscoverRepository) GetEventsByMonth(ctx context.Context, month int) ([]model.Event, error) {
	var result []model.Event
	for _, e := range r.events {
		if e.Month == month {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *MemoryDiscoverRepository) ListTravelRoutes(ctx context.Context) ([]model.TravelRoute, error) {
	result := make([]model.TravelRoute, len(r.routes))
	copy(result, r.routes)
	return result, nil
}

// defaultEvents 主要な観光イベント・祭事
func defaultEvents() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Name:        "Kumbh Mela",
			Date:        "2025-01-15",
			Location:    "Haridwar",
			Description: "The largest peaceful gathering of pilgrims on earth.",
			Category:    "Religious",
			Month:       1,
		},
		{
			ID:          "2",
			Name:        "International Yoga Festival",
			Date:        "2025-03-01",
			Location:    "Rishikesh",
			Description: "Week-long celebration of yoga with renowned teachers.",
			Category:    "Cultural",
			Month:       3,
		},
		{
			ID:          "3",
			Name:        "Nanda Devi Raj Jat",
			Date:        "2025-08-15",
			Location:    "Chamoli",
			Description: "Traditional pilgrimage to honor Goddess Nanda Devi.",
			Category:    "Religious",
			Month:       8,
		},
		{
			ID:          "4",
			Name:        "Uttarakhand Adventure Festival",
			Date:        "2025-10-10",
			Location:    "Rishikesh",
			Description: "Celebrating adventure sports and outdoor activities.",
			Category:    "Adventure",
			Month:       10,
		},
	}
}

// defaultTravelRoutes キュレーション済みのモデルコース
func defaultTravelRoutes() []model.TravelRoute {
	return []model.TravelRoute{
		{
			ID:       "1",
			Name:     "Spiritual Journey",
			Places:   []string{"Haridwar", "Rishikesh", "Devprayag"},
			Duration: "3 days",
			Distance: "120 km",
		},
		{
			ID:       "2",
			Name:     "Wildlife & Nature",
			Places:   []string{"Jim Corbett", "Nainital", "Ranikhet"},
			Duration: "5 days",
			Distance: "250 km",
		},
		{
			ID:       "3",
			Name:     "Adventure Trail",
			Places:   []string{"Rishikesh", "Auli", "Valley of Flowers"},
			Duration: "7 days",
			Distance: "400 km",
		},
	}
}
