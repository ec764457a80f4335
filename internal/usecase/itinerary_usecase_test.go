package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Yatra-App/internal/domain/model"
	"Yatra-App/internal/domain/service"
)

// stubPlanRepository テスト用のPlanGenerationRepository
type stubPlanRepository struct {
	plan    *model.GeneratedPlan
	err     error
	release chan struct{} // 非nilの場合、受信するまでGeneratePlanをブロックする
}

func (s *stubPlanRepository) GeneratePlan(ctx context.Context, req *model.GeneratePlanRequest) (*model.GeneratedPlan, error) {
	if s.release != nil {
		<-s.release
	}
	return s.plan, s.err
}

// recordingNotifier 通知を記録するテスト用Notifier
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func validGenerateRequest() *model.GeneratePlanRequest {
	return &model.GeneratePlanRequest{
		Destination:  "Nainital",
		DurationDays: 2,
		Budget:       model.BudgetHigh,
	}
}

func twoDayPlan() *model.GeneratedPlan {
	return &model.GeneratedPlan{
		Days: []model.GeneratedDay{
			{
				Day:   1,
				Title: "Arrival & Local Exploration",
				Activities: []model.GeneratedActivity{
					{Time: "10:00 AM", Activity: "Check-in at hotel", Location: "Nainital"},
				},
			},
			{
				Day:   2,
				Title: "Adventure & Sightseeing",
				Activities: []model.GeneratedActivity{
					{Time: "8:00 AM", Activity: "Sunrise trek", Location: "Nearby hills"},
				},
			},
		},
	}
}

func TestItineraryUseCase_GenerateSuccess(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(
		service.NewItineraryBuilder(),
		&stubPlanRepository{plan: twoDayPlan()},
		nil,
		notifier,
	)

	require.NoError(t, uc.Generate(context.Background(), validGenerateRequest()))

	days := uc.Days()
	require.Len(t, days, 2)
	assert.Equal(t, "Arrival & Local Exploration", days[0].Title)
	assert.Equal(t, []string{"AI-generated itinerary created!"}, notifier.successes)
	assert.Empty(t, notifier.errors)

	// 生成リクエストの予算レベルがサマリーに反映される
	summary := uc.Summary()
	assert.Equal(t, model.BudgetHigh, summary.Budget)
	assert.Equal(t, "₹70000", summary.EstimatedCost)
}

func TestItineraryUseCase_GenerateFailureLeavesStateUntouched(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(
		service.NewItineraryBuilder(),
		&stubPlanRepository{err: fmt.Errorf("API呼び出しエラー")},
		nil,
		notifier,
	)

	uc.AddActivity(uc.Days()[0].ID)
	before := uc.Days()

	err := uc.Generate(context.Background(), validGenerateRequest())
	require.Error(t, err)

	// 既存の旅程は一切変更されない
	assert.Equal(t, before, uc.Days())
	assert.Equal(t, []string{"Failed to generate itinerary"}, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestItineraryUseCase_GenerateMalformedPlanLeavesStateUntouched(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(
		service.NewItineraryBuilder(),
		&stubPlanRepository{plan: &model.GeneratedPlan{}},
		nil,
		notifier,
	)

	before := uc.Days()

	err := uc.Generate(context.Background(), validGenerateRequest())
	require.Error(t, err)
	assert.Equal(t, before, uc.Days())
	assert.Equal(t, []string{"Failed to generate itinerary"}, notifier.errors)
}

func TestItineraryUseCase_SingleGenerationInFlight(t *testing.T) {
	release := make(chan struct{})
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(
		service.NewItineraryBuilder(),
		&stubPlanRepository{plan: twoDayPlan(), release: release},
		nil,
		notifier,
	)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- uc.Generate(context.Background(), validGenerateRequest())
	}()

	// 1件目がブロックしている間の再送信は拒否される
	assert.Eventually(t, func() bool {
		err := uc.Generate(context.Background(), validGenerateRequest())
		return err == ErrGenerationInFlight
	}, time.Second, 5*time.Millisecond)

	close(release)
	require.NoError(t, <-firstDone)

	// 完了後は再び生成できる
	require.NoError(t, uc.Generate(context.Background(), validGenerateRequest()))
}

func TestItineraryUseCase_AddAttraction(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(service.NewItineraryBuilder(), &stubPlanRepository{}, nil, notifier)
	uc.AddDay()

	uc.AddAttraction(model.Attraction{ID: "2", Name: "Rishikesh"})

	// 最終日に追加される
	days := uc.Days()
	require.Len(t, days, 2)
	assert.Empty(t, days[0].Activities)
	require.Len(t, days[1].Activities, 1)
	assert.Equal(t, "Visit Rishikesh", days[1].Activities[0].Activity)
	assert.Equal(t, "Rishikesh", days[1].Activities[0].Location)
	assert.Equal(t, []string{"Rishikesh added to your itinerary!"}, notifier.successes)
}

func TestItineraryUseCase_AddAttractionToEmptyItinerary(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(service.NewItineraryBuilder(), &stubPlanRepository{}, nil, notifier)
	uc.RemoveDay(uc.Days()[0].ID)
	require.Empty(t, uc.Days())

	uc.AddAttraction(model.Attraction{ID: "1", Name: "Nainital"})

	// 全Day削除済みの場合は先にDayが追加される
	days := uc.Days()
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Visit Nainital", days[0].Activities[0].Activity)
}

func TestItineraryUseCase_ShareWithoutStorage(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewItineraryUseCase(service.NewItineraryBuilder(), &stubPlanRepository{}, nil, notifier)

	_, err := uc.Share(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Sharing is not available"}, notifier.errors)

	_, err = uc.GetShared(context.Background(), "share_x")
	require.Error(t, err)
}
