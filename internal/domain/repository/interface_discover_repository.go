package repository

import (
	"context"

	"Yatra-App/internal/domain/model"
)

type DiscoverRepository interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEventsByMonth(ctx context.Context, month int) ([]model.Event, error)
	ListTravelRoutes(ctx context.Context) ([]model.TravelRoute, error)
}
