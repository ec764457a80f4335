package handler

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/usecase"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ItineraryHandler は旅程ビルダーAPIのハンドラー
type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
}

// NewItineraryHandler は新しいItineraryHandlerインスタンスを作成
func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUseCase: itineraryUseCase,
	}
}

// GetItinerary は旅程全体を取得するエンドポイント
// GET /itinerary
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// GetSummary は旅程のサマリーを取得するエンドポイント
// GET /itinerary/summary
func (h *ItineraryHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.itineraryUseCase.Summary())
}

// PostDay は新しいDayを追加するエンドポイント
// POST /itinerary/days
func (h *ItineraryHandler) PostDay(c *gin.Context) {
	day := h.itineraryUseCase.AddDay()
	c.JSON(http.StatusCreated, day)
}

// DeleteDay はDayを削除するエンドポイント
// DELETE /itinerary/days/:dayId
// 存在しないIDは黙って無視され、更新後のスナップショットを返す
func (h *ItineraryHandler) DeleteDay(c *gin.Context) {
	h.itineraryUseCase.RemoveDay(c.Param("dayId"))
	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// RenameDayRequest Dayのタイトル変更リクエスト
type RenameDayRequest struct {
	Title string `json:"title"`
}

// PatchDay はDayのタイトルを変更するエンドポイント
// PATCH /itinerary/days/:dayId
func (h *ItineraryHandler) PatchDay(c *gin.Context) {
	var req RenameDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	h.itineraryUseCase.RenameDay(c.Param("dayId"), req.Title)
	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// PostActivity はDayにデフォルト値のActivityを追加するエンドポイント
// POST /itinerary/days/:dayId/activities
func (h *ItineraryHandler) PostActivity(c *gin.Context) {
	h.itineraryUseCase.AddActivity(c.Param("dayId"))
	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// DeleteActivity はActivityを削除するエンドポイント
// DELETE /itinerary/days/:dayId/activities/:activityId
func (h *ItineraryHandler) DeleteActivity(c *gin.Context) {
	h.itineraryUseCase.RemoveActivity(c.Param("dayId"), c.Param("activityId"))
	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// UpdateActivityRequest Activityのフィールド更新リクエスト
type UpdateActivityRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PatchActivity はActivityのフィールドを1つ更新するエンドポイント
// PATCH /itinerary/days/:dayId/activities/:activityId
func (h *ItineraryHandler) PatchActivity(c *gin.Context) {
	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if !model.IsValidActivityField(req.Field) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "field", Message: "fieldは'time'・'activity'・'location'のいずれかを指定してください"}).Error(),
		})
		return
	}

	h.itineraryUseCase.UpdateActivityField(c.Param("dayId"), c.Param("activityId"), req.Field, req.Value)
	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// PostGenerate はAI生成プランで旅程を置き換えるエンドポイント
// POST /itinerary/generate
func (h *ItineraryHandler) PostGenerate(c *gin.Context) {
	var req model.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if err := h.validateGenerateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	if err := h.itineraryUseCase.Generate(c.Request.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrGenerationInFlight) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "旅程の生成処理が進行中です",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "旅程の生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days": h.itineraryUseCase.Days(),
	})
}

// PostShare は旅程の共有リンクを発行するエンドポイント
// POST /itinerary/share
func (h *ItineraryHandler) PostShare(c *gin.Context) {
	shared, err := h.itineraryUseCase.Share(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "共有リンクの発行に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, shared)
}

// GetShared は共有IDから旅程スナップショットを取得するエンドポイント
// GET /itinerary/share/:id
func (h *ItineraryHandler) GetShared(c *gin.Context) {
	shareID := c.Param("id")
	if shareID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "share_idが指定されていません",
		})
		return
	}

	shared, err := h.itineraryUseCase.GetShared(c.Request.Context(), shareID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "共有された旅程が見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "共有された旅程の取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, shared)
}

// validateGenerateRequest は生成リクエストの詳細バリデーションを行う
func (h *ItineraryHandler) validateGenerateRequest(req *model.GeneratePlanRequest) error {
	if req.Destination == "" {
		return &ValidationError{Field: "destination", Message: "行き先は必須です"}
	}

	if req.DurationDays < 1 || req.DurationDays > 14 {
		return &ValidationError{Field: "duration_days", Message: "日数は1から14の範囲で指定してください"}
	}

	if !model.IsValidBudget(req.Budget) {
		return &ValidationError{Field: "budget", Message: "予算は'Low'・'Medium'・'High'のいずれかを指定してください"}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
