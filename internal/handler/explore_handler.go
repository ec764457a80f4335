package handler

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/usecase"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExploreHandler はマップエクスプローラーAPIのハンドラー
type ExploreHandler struct {
	exploreUseCase usecase.ExploreUseCase
}

// NewExploreHandler は新しいExploreHandlerインスタンスを作成
func NewExploreHandler(exploreUseCase usecase.ExploreUseCase) *ExploreHandler {
	return &ExploreHandler{
		exploreUseCase: exploreUseCase,
	}
}

// GetAttractions はスポット一覧を取得するエンドポイント
// GET /attractions?category=&q=
func (h *ExploreHandler) GetAttractions(c *gin.Context) {
	attractions, err := h.exploreUseCase.ListAttractions(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "スポット一覧の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	if attractions == nil {
		attractions = []model.Attraction{}
	}
	c.JSON(http.StatusOK, attractions)
}

// GetAttraction は特定のスポットを取得するエンドポイント
// GET /attractions/:id
func (h *ExploreHandler) GetAttraction(c *gin.Context) {
	attraction, err := h.exploreUseCase.GetAttraction(c.Request.Context(), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "スポットが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "スポットの取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, attraction)
}

// GetMapPins は投影済みピン一覧を取得するエンドポイント
// GET /map/pins?category=&q=&in_bounds=
// in_bounds=trueの場合は境界ボックス外のスポットをレスポンスから除外する
func (h *ExploreHandler) GetMapPins(c *gin.Context) {
	inBoundsOnly := c.Query("in_bounds") == "true"
	pins, err := h.exploreUseCase.MapPins(c.Request.Context(), c.Query("category"), c.Query("q"), inBoundsOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "マップピンの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	selectedID, hoveredID := h.exploreUseCase.SelectionState()
	c.JSON(http.StatusOK, gin.H{
		"pins":        pins,
		"selected_id": selectedID,
		"hovered_id":  hoveredID,
	})
}

// PostSelect はピンを選択するエンドポイント
// POST /map/select/:id
func (h *ExploreHandler) PostSelect(c *gin.Context) {
	attraction, err := h.exploreUseCase.Select(c.Request.Context(), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "スポットが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "スポットの選択に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selected": attraction,
	})
}

// PostClear は選択を解除するエンドポイント
// POST /map/clear
func (h *ExploreHandler) PostClear(c *gin.Context) {
	h.exploreUseCase.ClearSelection()
	c.JSON(http.StatusOK, gin.H{
		"selected_id": "",
	})
}

// PostHover はホバーフラグを立てるエンドポイント
// POST /map/hover/:id
func (h *ExploreHandler) PostHover(c *gin.Context) {
	h.exploreUseCase.HoverEnter(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"hovered_id": c.Param("id"),
	})
}

// DeleteHover はホバーフラグを下ろすエンドポイント
// DELETE /map/hover/:id
func (h *ExploreHandler) DeleteHover(c *gin.Context) {
	h.exploreUseCase.HoverExit(c.Param("id"))
	_, hoveredID := h.exploreUseCase.SelectionState()
	c.JSON(http.StatusOK, gin.H{
		"hovered_id": hoveredID,
	})
}

// PostAddToItinerary は選択中のスポットを旅程に追加するエンドポイント
// POST /map/select/:id/itinerary
func (h *ExploreHandler) PostAddToItinerary(c *gin.Context) {
	attraction, err := h.exploreUseCase.AddToItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "スポットが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "旅程への追加に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added": attraction,
	})
}
