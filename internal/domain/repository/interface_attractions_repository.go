package repository

import (
	"context"

	"Yatra-App/internal/domain/model"
)

type AttractionsRepository interface {
	GetByID(ctx context.Context, id string) (*model.Attraction, error)
	ListAttractions(ctx context.Context) ([]model.Attraction, error)
	GetByCategory(ctx context.Context, category string) ([]model.Attraction, error)
}
