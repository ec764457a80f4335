package handler

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DiscoverHandler はイベント・モデルコースAPIのハンドラー
type DiscoverHandler struct {
	discoverRepo repository.DiscoverRepository
}

// NewDiscoverHandler は新しいDiscoverHandlerインスタンスを作成
func NewDiscoverHandler(discoverRepo repository.DiscoverRepository) *DiscoverHandler {
	return &DiscoverHandler{
		discoverRepo: discoverRepo,
	}
}

// GetEvents はイベント一覧を取得するエンドポイント
// GET /events?month=
func (h *DiscoverHandler) GetEvents(c *gin.Context) {
	var events []model.Event
	var err error

	if monthStr := c.Query("month"); monthStr != "" {
		month, parseErr := strconv.Atoi(monthStr)
		if parseErr != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "monthは1から12の整数で指定してください",
			})
			return
		}
		events, err = h.discoverRepo.GetEventsByMonth(c.Request.Context(), month)
	} else {
		events, err = h.discoverRepo.ListEvents(c.Request.Context())
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "イベント一覧の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	if events == nil {
		events = []model.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetTravelRoutes はモデルコース一覧を取得するエンドポイント
// GET /travel-routes
func (h *DiscoverHandler) GetTravelRoutes(c *gin.Context) {
	routes, err := h.discoverRepo.ListTravelRoutes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "モデルコース一覧の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, routes)
}
