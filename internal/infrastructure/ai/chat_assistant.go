package ai

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"context"
	"fmt"
	"log"
	"strings"
)

// geminiChatRepository はGemini APIを使用してChatAssistantRepositoryを実装
type geminiChatRepository struct {
	client *GeminiClient
}

// NewGeminiChatRepository は新しいgeminiChatRepositoryインスタンスを作成
func NewGeminiChatRepository(client *GeminiClient) repository.ChatAssistantRepository {
	return &geminiChatRepository{
		client: client,
	}
}

// Ask は質問に対する回答を生成する
// API呼び出しに失敗した場合はフォールバック回答を返す（チャットは致命的エラーにしない）
func (g *geminiChatRepository) Ask(ctx context.Context, query string) (*model.ChatResponse, error) {
	prompt := fmt.Sprintf(`You are a friendly travel assistant for Uttarakhand, India.
Answer the following question in 2-4 sentences, focused on practical travel advice.

Question: %s`, query)

	content, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ チャット回答の生成に失敗、フォールバック使用: %v", err)
		return g.fallbackResponse(query), nil
	}

	return &model.ChatResponse{
		Response: strings.TrimSpace(content),
		Sources: []model.ChatSource{
			{Name: "Uttarakhand Tourism Board", URL: "#"},
			{Name: "Travel Guide 2025", URL: "#"},
		},
		Suggestions: []string{"Plan 3-day itinerary", "Best time to visit", "Local cuisine"},
	}, nil
}

// fallbackResponse はAPI呼び出しが失敗した場合のフォールバック回答を生成
func (g *geminiChatRepository) fallbackResponse(query string) *model.ChatResponse {
	place := "Uttarakhand"
	if strings.Contains(query, "Nainital") {
		place = "Nainital"
	}

	return &model.ChatResponse{
		Response: fmt.Sprintf("I'd be happy to help you explore %s! This beautiful destination offers stunning natural beauty, spiritual experiences, and adventure activities. Would you like me to suggest a detailed itinerary?", place),
		Sources: []model.ChatSource{
			{Name: "Uttarakhand Tourism Board", URL: "#"},
			{Name: "Travel Guide 2025", URL: "#"},
		},
		Suggestions: []string{"Plan 3-day itinerary", "Best time to visit", "Local cuisine"},
	}
}
