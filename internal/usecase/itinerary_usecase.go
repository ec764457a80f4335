package usecase

import (
	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/repository"
	"Yatra-App/internal/domain/service"
	repoImpl "Yatra-App/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrGenerationInFlight は生成リクエストが既に進行中の場合に返すエラー
// UIは生成中の再送信を無効化するため、通常の操作ではこの経路に入らない
var ErrGenerationInFlight = errors.New("旅程の生成処理が進行中です")

// ShareTTLHours 共有スナップショットの有効期間
const ShareTTLHours = 72

type ItineraryUseCase interface {
	// Days は表示順の旅程スナップショットを返す
	Days() []model.ItineraryDay

	// Summary は日数・アクティビティ総数・概算費用を返す
	Summary() model.ItinerarySummary

	// AddDay は新しいDayを末尾に追加する
	AddDay() model.ItineraryDay

	// RemoveDay / RenameDay / AddActivity / RemoveActivity / UpdateActivityField
	// は旅程のCRUD操作（不明なIDは黙って無視する）
	RemoveDay(dayID string)
	RenameDay(dayID, title string)
	AddActivity(dayID string)
	RemoveActivity(dayID, activityID string)
	UpdateActivityField(dayID, activityID, field, value string)

	// Generate はAI生成プランで旅程全体を置き換える
	// 同時に実行できる生成は1件のみで、失敗時は既存の旅程を一切変更しない
	Generate(ctx context.Context, req *model.GeneratePlanRequest) error

	// AddAttraction はマップで選択したスポットを最終日のアクティビティとして追加する
	AddAttraction(attraction model.Attraction)

	// Share は現在の旅程をスナップショットとして保存し共有IDを返す
	Share(ctx context.Context) (*model.SharedItinerary, error)

	// GetShared は共有IDから旅程スナップショットを取得する
	GetShared(ctx context.Context, shareID string) (*model.SharedItinerary, error)
}

// itineraryUseCaseImpl はItineraryUseCaseの実装
type itineraryUseCaseImpl struct {
	builder   *service.ItineraryBuilder
	planRepo  repository.PlanGenerationRepository
	shareRepo *repoImpl.FirestoreShareRepository // nilの場合は共有機能なし
	notifier  repository.Notifier

	mu         sync.Mutex
	generating bool
	budget     string // 直近の生成リクエストの予算レベル（概算費用の計算に使用）
}

// NewItineraryUseCase は新しいItineraryUseCaseインスタンスを作成
func NewItineraryUseCase(
	builder *service.ItineraryBuilder,
	planRepo repository.PlanGenerationRepository,
	shareRepo *repoImpl.FirestoreShareRepository,
	notifier repository.Notifier,
) ItineraryUseCase {
	return &itineraryUseCaseImpl{
		builder:   builder,
		planRepo:  planRepo,
		shareRepo: shareRepo,
		notifier:  notifier,
		budget:    model.BudgetMedium,
	}
}

func (u *itineraryUseCaseImpl) Days() []model.ItineraryDay {
	return u.builder.Days()
}

func (u *itineraryUseCaseImpl) Summary() model.ItinerarySummary {
	u.mu.Lock()
	budget := u.budget
	u.mu.Unlock()
	return u.builder.Summary(budget)
}

func (u *itineraryUseCaseImpl) AddDay() model.ItineraryDay {
	return u.builder.AddDay()
}

func (u *itineraryUseCaseImpl) RemoveDay(dayID string) {
	u.builder.RemoveDay(dayID)
}

func (u *itineraryUseCaseImpl) RenameDay(dayID, title string) {
	u.builder.RenameDay(dayID, title)
}

func (u *itineraryUseCaseImpl) AddActivity(dayID string) {
	u.builder.AddActivity(dayID)
}

func (u *itineraryUseCaseImpl) RemoveActivity(dayID, activityID string) {
	u.builder.RemoveActivity(dayID, activityID)
}

func (u *itineraryUseCaseImpl) UpdateActivityField(dayID, activityID, field, value string) {
	u.builder.UpdateActivityField(dayID, activityID, field, value)
}

// Generate はAI生成プランで旅程全体を置き換える
func (u *itineraryUseCaseImpl) Generate(ctx context.Context, req *model.GeneratePlanRequest) error {
	if err := u.beginGeneration(); err != nil {
		return err
	}
	defer u.endGeneration()

	log.Printf("🚀 旅程生成開始 (行き先: %s, %d日間, 予算: %s)", req.Destination, req.DurationDays, req.Budget)

	plan, err := u.planRepo.GeneratePlan(ctx, req)
	if err != nil {
		u.notifier.Error("Failed to generate itinerary")
		return fmt.Errorf("旅程の生成に失敗: %w", err)
	}

	if err := u.builder.ReplaceAll(plan); err != nil {
		u.notifier.Error("Failed to generate itinerary")
		return fmt.Errorf("生成された旅程の適用に失敗: %w", err)
	}

	u.mu.Lock()
	u.budget = req.Budget
	u.mu.Unlock()

	log.Printf("🎉 旅程生成完了 (%d日分)", len(plan.Days))
	u.notifier.Success("AI-generated itinerary created!")
	return nil
}

// AddAttraction はマップで選択したスポットを最終日のアクティビティとして追加する
// 旅程が空（全Dayを削除済み）の場合は先にDayを追加する
func (u *itineraryUseCaseImpl) AddAttraction(attraction model.Attraction) {
	dayID := u.builder.LastDayID()
	if dayID == "" {
		day := u.builder.AddDay()
		dayID = day.ID
	}

	u.builder.AddActivityDetail(dayID, model.DefaultActivityTime, "Visit "+attraction.Name, attraction.Name)
	u.notifier.Success(fmt.Sprintf("%s added to your itinerary!", attraction.Name))
}

// Share は現在の旅程をスナップショットとして保存し共有IDを返す
func (u *itineraryUseCaseImpl) Share(ctx context.Context) (*model.SharedItinerary, error) {
	if u.shareRepo == nil {
		u.notifier.Error("Sharing is not available")
		return nil, fmt.Errorf("共有ストレージが設定されていません")
	}

	u.mu.Lock()
	budget := u.budget
	u.mu.Unlock()

	log.Printf("💾 旅程スナップショット保存中...")
	shared, err := u.shareRepo.SaveSnapshot(ctx, u.builder.Days(), budget, ShareTTLHours)
	if err != nil {
		u.notifier.Error("Failed to create shareable link")
		return nil, err
	}

	u.notifier.Success("Shareable link copied to clipboard!")
	return shared, nil
}

// GetShared は共有IDから旅程スナップショットを取得する
func (u *itineraryUseCaseImpl) GetShared(ctx context.Context, shareID string) (*model.SharedItinerary, error) {
	if u.shareRepo == nil {
		return nil, fmt.Errorf("共有ストレージが設定されていません")
	}
	return u.shareRepo.GetSnapshot(ctx, shareID)
}

// beginGeneration は生成の開始を記録する（既に進行中ならエラー）
func (u *itineraryUseCaseImpl) beginGeneration() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.generating {
		return ErrGenerationInFlight
	}
	u.generating = true
	return nil
}

// endGeneration は生成の終了を記録する
func (u *itineraryUseCaseImpl) endGeneration() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.generating = false
}
