package repository

import (
	"Yatra-App/internal/domain/model"
	"context"
)

// ChatAssistantRepository は旅行アシスタントチャットの責務を持つリポジトリインターフェース
type ChatAssistantRepository interface {
	// Ask は質問に対する回答を生成する
	Ask(ctx context.Context, query string) (*model.ChatResponse, error)
}
