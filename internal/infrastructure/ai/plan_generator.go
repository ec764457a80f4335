package ai

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// geminiPlanRepository はGemini APIを使用してPlanGenerationRepositoryを実装
type geminiPlanRepository struct {
	client *GeminiClient
}

// NewGeminiPlanRepository は新しいgeminiPlanRepositoryインスタンスを作成
func NewGeminiPlanRepository(client *GeminiClient) repository.PlanGenerationRepository {
	return &geminiPlanRepository{
		client: client,
	}
}

// GeneratePlan は行き先・日数・予算レベルから旅程プランを生成する
func (g *geminiPlanRepository) GeneratePlan(ctx context.Context, req *model.GeneratePlanRequest) (*model.GeneratedPlan, error) {
	prompt := g.buildPlanPrompt(req)

	log.Printf("🤖 Gemini APIで旅程プランを生成中... (行き先: %s, %d日間)", req.Destination, req.DurationDays)

	content, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}

	plan, err := g.parsePlanContent(content)
	if err != nil {
		return nil, fmt.Errorf("生成されたプランの解析に失敗: %w", err)
	}

	log.Printf("✅ 旅程プラン生成完了 (%d日分)", len(plan.Days))
	return plan, nil
}

// buildPlanPrompt は旅程プラン生成用プロンプトを構築
func (g *geminiPlanRepository) buildPlanPrompt(req *model.GeneratePlanRequest) string {
	return fmt.Sprintf(`You are a travel planner for Uttarakhand, India.
Create a %d-day itinerary for a trip to %s with a %s budget.

Respond with JSON only, no prose, in exactly this shape:
{"days":[{"day":1,"title":"...","activities":[{"time":"10:00 AM","activity":"...","location":"..."}]}]}

Requirements:
- exactly %d entries in "days", numbered from 1
- 2 to 4 activities per day
- "time" is a display string like "10:00 AM"
- every title starts with "Day N: "`,
		req.DurationDays, req.Destination, req.Budget, req.DurationDays)
}

// parsePlanContent は生成されたコンテンツからプランを抽出
// コードフェンス付きで返ってくる場合があるため先に取り除く
func (g *geminiPlanRepository) parsePlanContent(content string) (*model.GeneratedPlan, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var plan model.GeneratedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("プランのJSONアンマーシャル失敗: %w", err)
	}

	if plan.IsEmpty() {
		return nil, fmt.Errorf("プランに日程が含まれていません")
	}

	return &plan, nil
}
