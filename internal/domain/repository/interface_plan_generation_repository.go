package repository

import (
	"Yatra-App/internal/domain/model"
	"context"
)

// PlanGenerationRepository は旅程プラン生成の責務を持つリポジトリインターフェース
type PlanGenerationRepository interface {
	// GeneratePlan は行き先・日数・予算レベルから旅程プランを生成する
	GeneratePlan(ctx context.Context, req *model.GeneratePlanRequest) (*model.GeneratedPlan, error)
}
