package repository

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"Yatra-App/internal/infrastructure/database"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PostgresAttractionsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresAttractionsRepository(client *database.PostgreSQLClient) repository.AttractionsRepository {
	return &PostgresAttractionsRepository{
		client: client,
	}
}

// AttractionResult attractionsテーブルの行を受け取るための構造体
// activitiesはJSONB列で文字列配列として格納されている
type AttractionResult struct {
	ID          string
	Name        string
	Description string
	Category    string
	Latitude    float64
	Longitude   float64
	Image       sql.NullString
	Rating      float64
	BestTime    sql.NullString
	Activities  string
}

// ToAttraction AttractionResultをmodel.Attractionに変換
func (ar *AttractionResult) ToAttraction() (*model.Attraction, error) {
	var activities []string
	if ar.Activities != "" {
		if err := json.Unmarshal([]byte(ar.Activities), &activities); err != nil {
			return nil, fmt.Errorf("activities JSONBパースエラー: %w", err)
		}
	}

	attraction := &model.Attraction{
		ID:          ar.ID,
		Name:        ar.Name,
		Description: ar.Description,
		Category:    ar.Category,
		Latitude:    ar.Latitude,
		Longitude:   ar.Longitude,
		Rating:      ar.Rating,
		Activities:  activities,
	}

	if ar.Image.Valid {
		attraction.Image = ar.Image.String
	}
	if ar.BestTime.Valid {
		attraction.BestTime = ar.BestTime.String
	}

	return attraction, nil
}

const attractionColumns = `id, name, description, category, latitude, longitude, image, rating, best_time, activities`

func (r *PostgresAttractionsRepository) GetByID(ctx context.Context, id string) (*model.Attraction, error) {
	query := fmt.Sprintf(`SELECT %s FROM attractions WHERE id = $1`, attractionColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result AttractionResult
	err := row.Scan(&result.ID, &result.Name, &result.Description, &result.Category,
		&result.Latitude, &result.Longitude, &result.Image, &result.Rating,
		&result.BestTime, &result.Activities)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("スポット ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	return result.ToAttraction()
}

func (r *PostgresAttractionsRepository) ListAttractions(ctx context.Context) ([]model.Attraction, error) {
	query := fmt.Sprintf(`SELECT %s FROM attractions ORDER BY rating DESC`, attractionColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	return r.scanAttractions(rows)
}

func (r *PostgresAttractionsRepository) GetByCategory(ctx context.Context, category string) ([]model.Attraction, error) {
	if category == "" || category == model.CategoryAll {
		return r.ListAttractions(ctx)
	}

	query := fmt.Sprintf(`SELECT %s FROM attractions WHERE category = $1 ORDER BY rating DESC`, attractionColumns)

	rows, err := r.client.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	return r.scanAttractions(rows)
}

// scanAttractions 複数行をmodel.Attractionのスライスに変換
func (r *PostgresAttractionsRepository) scanAttractions(rows *sql.Rows) ([]model.Attraction, error) {
	var attractions []model.Attraction
	for rows.Next() {
		var result AttractionResult
		err := rows.Scan(&result.ID, &result.Name, &result.Description, &result.Category,
			&result.Latitude, &result.Longitude, &result.Image, &result.Rating,
			&result.BestTime, &result.Activities)
		if err != nil {
			return nil, fmt.Errorf("スポットデータのスキャン失敗: %w", err)
		}

		attraction, err := result.ToAttraction()
		if err != nil {
			return nil, err
		}
		attractions = append(attractions, *attraction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータの読み取り失敗: %w", err)
	}

	return attractions, nil
}
