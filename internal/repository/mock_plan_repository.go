package repository

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"context"
	"fmt"
)

// MockPlanRepository 固定の旅程プランを返すPlanGenerationRepositoryの実装
// GEMINI_API_KEYが未設定の開発環境でのフォールバックとして使用する
type MockPlanRepository struct{}

// NewMockPlanRepository 新しいMockPlanRepositoryインスタンスを作成
func NewMockPlanRepository() repository.PlanGenerationRepository {
	return &MockPlanRepository{}
}

// GeneratePlan は行き先を埋め込んだ決定的なプランを返す
// 日数はリクエストに関わらず2日分（開発用の固定データ）
func (r *MockPlanRepository) GeneratePlan(ctx context.Context, req *model.GeneratePlanRequest) (*model.GeneratedPlan, error) {
	if req == nil || req.Destination == "" {
		return nil, fmt.Errorf("行き先が指定されていません")
	}

	return &model.GeneratedPlan{
		Days: []model.GeneratedDay{
			{
				Day:   1,
				Title: "Arrival & Local Exploration",
				Activities: []model.GeneratedActivity{
					{Time: "10:00 AM", Activity: "Check-in at hotel", Location: req.Destination},
					{Time: "2:00 PM", Activity: "Local market visit", Location: req.Destination},
					{Time: "6:00 PM", Activity: "Evening at lakeside", Location: req.Destination},
				},
			},
			{
				Day:   2,
				Title: "Adventure & Sightseeing",
				Activities: []model.GeneratedActivity{
					{Time: "8:00 AM", Activity: "Sunrise trek", Location: "Nearby hills"},
					{Time: "12:00 PM", Activity: "Local cuisine lunch", Location: "Popular restaurant"},
					{Time: "4:00 PM", Activity: "Visit main attractions", Location: req.Destination},
				},
			},
		},
	}, nil
}
