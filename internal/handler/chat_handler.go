package handler

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatHandler は旅行アシスタントチャットAPIのハンドラー
type ChatHandler struct {
	chatRepo repository.ChatAssistantRepository
}

// NewChatHandler は新しいChatHandlerインスタンスを作成
func NewChatHandler(chatRepo repository.ChatAssistantRepository) *ChatHandler {
	return &ChatHandler{
		chatRepo: chatRepo,
	}
}

// PostChat は質問に回答するエンドポイント
// POST /chat
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "queryは必須です",
		})
		return
	}

	response, err := h.chatRepo.Ask(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "回答の生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
