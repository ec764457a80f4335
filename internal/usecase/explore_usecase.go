package usecase

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"Yatra-App/internal/domain/service"
	repoImpl "Yatra-App/internal/repository"
	"context"
	"fmt"
	"strings"
)

type ExploreUseCase interface {
	// ListAttractions はカテゴリと名前検索でフィルタしたスポット一覧を返す
	ListAttractions(ctx context.Context, category, query string) ([]model.Attraction, error)

	// GetAttraction は指定IDのスポットを返す
	GetAttraction(ctx context.Context, id string) (*model.Attraction, error)

	// MapPins はフィルタ済みスポットの投影座標と表示状態を返す
	// inBoundsOnlyの場合は境界ボックス外のスポットを除外する
	MapPins(ctx context.Context, category, query string, inBoundsOnly bool) ([]model.MapPin, error)

	// Select は指定スポットを選択状態にする（以前の選択は同時に解除）
	Select(ctx context.Context, id string) (*model.Attraction, error)

	// ClearSelection は選択を解除する
	ClearSelection()

	// HoverEnter / HoverExit はホバーフラグを設定・解除する
	HoverEnter(id string)
	HoverExit(id string)

	// SelectionState は現在の選択・ホバーIDのペアを返す
	SelectionState() (selectedID, hoveredID string)

	// AddToItinerary は「旅程に追加」操作を旅程側のコールバックに委譲する
	AddToItinerary(ctx context.Context, id string) (*model.Attraction, error)
}

// exploreUseCaseImpl はExploreUseCaseの実装
// マップエンジンは旅程に直接触れず、追加要求はonAddコールバックで通知するだけ
type exploreUseCaseImpl struct {
	attractionsRepo repository.AttractionsRepository
	projection      *service.MapProjection
	pinBoard        *service.PinBoard
	onAdd           func(model.Attraction)
}

// NewExploreUseCase は新しいExploreUseCaseインスタンスを作成
// onAddはマップからの「旅程に追加」要求の通知先（必須）
func NewExploreUseCase(
	attractionsRepo repository.AttractionsRepository,
	projection *service.MapProjection,
	pinBoard *service.PinBoard,
	onAdd func(model.Attraction),
) ExploreUseCase {
	return &exploreUseCaseImpl{
		attractionsRepo: attractionsRepo,
		projection:      projection,
		pinBoard:        pinBoard,
		onAdd:           onAdd,
	}
}

func (u *exploreUseCaseImpl) ListAttractions(ctx context.Context, category, query string) ([]model.Attraction, error) {
	attractions, err := u.attractionsRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("スポット一覧の取得に失敗: %w", err)
	}

	if query == "" {
		return attractions, nil
	}

	// 名前の部分一致検索（大文字小文字は区別しない）
	needle := strings.ToLower(query)
	var result []model.Attraction
	for _, a := range attractions {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (u *exploreUseCaseImpl) GetAttraction(ctx context.Context, id string) (*model.Attraction, error) {
	return u.attractionsRepo.GetByID(ctx, id)
}

// MapPins はフィルタ済みスポットの投影座標と表示状態を返す
// 投影座標は保存せず、要求のたびに再計算する
func (u *exploreUseCaseImpl) MapPins(ctx context.Context, category, query string, inBoundsOnly bool) ([]model.MapPin, error) {
	attractions, err := u.ListAttractions(ctx, category, query)
	if err != nil {
		return nil, err
	}

	if inBoundsOnly {
		attractions = repoImpl.FilterWithinBound(attractions, u.projection.Bound())
	}

	pins := make([]model.MapPin, 0, len(attractions))
	for _, a := range attractions {
		pins = append(pins, model.MapPin{
			Attraction: a,
			Position:   u.projection.ProjectAttraction(&a),
			State:      u.pinBoard.StateOf(a.ID),
			InBounds:   u.projection.InBounds(a.Latitude, a.Longitude),
		})
	}
	return pins, nil
}

func (u *exploreUseCaseImpl) Select(ctx context.Context, id string) (*model.Attraction, error) {
	attraction, err := u.attractionsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("スポットの選択に失敗: %w", err)
	}

	u.pinBoard.Select(*attraction)
	return attraction, nil
}

func (u *exploreUseCaseImpl) ClearSelection() {
	u.pinBoard.Clear()
}

func (u *exploreUseCaseImpl) HoverEnter(id string) {
	u.pinBoard.HoverEnter(id)
}

func (u *exploreUseCaseImpl) HoverExit(id string) {
	u.pinBoard.HoverExit(id)
}

func (u *exploreUseCaseImpl) SelectionState() (selectedID, hoveredID string) {
	return u.pinBoard.SelectedID(), u.pinBoard.HoveredID()
}

func (u *exploreUseCaseImpl) AddToItinerary(ctx context.Context, id string) (*model.Attraction, error) {
	attraction, err := u.attractionsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("スポットの取得に失敗: %w", err)
	}

	u.onAdd(*attraction)
	return attraction, nil
}
