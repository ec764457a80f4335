package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Yatra-App/internal/domain/model"
)

func TestItineraryBuilder_SeedState(t *testing.T) {
	b := NewItineraryBuilder()

	days := b.Days()
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, model.SeedDayTitle, days[0].Title)
	assert.Empty(t, days[0].Activities)
	assert.NotEmpty(t, days[0].ID)
}

func TestItineraryBuilder_AddDay(t *testing.T) {
	b := NewItineraryBuilder()

	day2 := b.AddDay()
	day3 := b.AddDay()

	assert.Equal(t, 2, day2.Day)
	assert.Equal(t, "Day 2: Sightseeing", day2.Title)
	assert.Equal(t, 3, day3.Day)
	assert.NotEqual(t, day2.ID, day3.ID)
	assert.Equal(t, 3, b.DayCount())
}

func TestItineraryBuilder_RemoveDay(t *testing.T) {
	t.Run("追加と削除の回数が日数に一致する", func(t *testing.T) {
		b := NewItineraryBuilder()
		seed := b.Days()[0]
		day2 := b.AddDay()
		day3 := b.AddDay()

		b.RemoveDay(day2.ID)
		require.Equal(t, 2, b.DayCount())

		// 残ったDayは削除されなかったものと厳密に一致する
		ids := []string{}
		for _, d := range b.Days() {
			ids = append(ids, d.ID)
		}
		assert.Equal(t, []string{seed.ID, day3.ID}, ids)
	})

	t.Run("連番は振り直さない", func(t *testing.T) {
		b := NewItineraryBuilder()
		b.AddDay()
		day3 := b.AddDay()

		b.RemoveDay(b.Days()[1].ID)

		days := b.Days()
		require.Len(t, days, 2)
		assert.Equal(t, 1, days[0].Day)
		assert.Equal(t, 3, days[1].Day) // Day 3のまま
		assert.Equal(t, day3.Title, days[1].Title)
	})

	t.Run("不明なIDは何もしない", func(t *testing.T) {
		b := NewItineraryBuilder()
		b.RemoveDay("no-such-day")
		assert.Equal(t, 1, b.DayCount())
	})
}

func TestItineraryBuilder_RenameDay(t *testing.T) {
	b := NewItineraryBuilder()
	dayID := b.Days()[0].ID

	b.RenameDay(dayID, "Day 1: Temple Hopping")
	assert.Equal(t, "Day 1: Temple Hopping", b.Days()[0].Title)

	// 不明なIDは何もしない
	b.RenameDay("no-such-day", "ignored")
	assert.Equal(t, "Day 1: Temple Hopping", b.Days()[0].Title)
}

func TestItineraryBuilder_ActivityLifecycle(t *testing.T) {
	b := NewItineraryBuilder()
	dayID := b.Days()[0].ID

	// addActivityを2回 → 異なるIDの2件
	b.AddActivity(dayID)
	b.AddActivity(dayID)

	activities := b.Days()[0].Activities
	require.Len(t, activities, 2)
	assert.NotEqual(t, activities[0].ID, activities[1].ID)
	assert.Equal(t, model.DefaultActivityTime, activities[0].Time)
	assert.Equal(t, model.DefaultActivityName, activities[0].Activity)
	assert.Equal(t, model.DefaultActivityPlace, activities[0].Location)

	// 1件目を削除 → 2件目だけが残る
	b.RemoveActivity(dayID, activities[0].ID)
	remaining := b.Days()[0].Activities
	require.Len(t, remaining, 1)
	assert.Equal(t, activities[1].ID, remaining[0].ID)

	// 不明なIDの組み合わせは何もしない
	b.RemoveActivity("no-such-day", activities[1].ID)
	b.RemoveActivity(dayID, "no-such-activity")
	assert.Len(t, b.Days()[0].Activities, 1)
}

func TestItineraryBuilder_UpdateActivityField(t *testing.T) {
	fields := []struct {
		name  string
		field string
		get   func(a model.Activity) string
	}{
		{"time", model.ActivityFieldTime, func(a model.Activity) string { return a.Time }},
		{"activity", model.ActivityFieldActivity, func(a model.Activity) string { return a.Activity }},
		{"location", model.ActivityFieldLocation, func(a model.Activity) string { return a.Location }},
	}

	for _, tc := range fields {
		t.Run(tc.name+"のみが更新される", func(t *testing.T) {
			b := NewItineraryBuilder()
			dayID := b.Days()[0].ID
			b.AddActivity(dayID)
			before := b.Days()[0].Activities[0]

			b.UpdateActivityField(dayID, before.ID, tc.field, "updated-value")

			after := b.Days()[0].Activities[0]
			assert.Equal(t, "updated-value", tc.get(after))

			// 指定したフィールド以外は不変
			for _, other := range fields {
				if other.field != tc.field {
					assert.Equal(t, other.get(before), other.get(after))
				}
			}
			assert.Equal(t, before.ID, after.ID)
		})
	}

	t.Run("不明なフィールド名は何もしない", func(t *testing.T) {
		b := NewItineraryBuilder()
		dayID := b.Days()[0].ID
		b.AddActivity(dayID)
		before := b.Days()[0].Activities[0]

		b.UpdateActivityField(dayID, before.ID, "rating", "5")
		assert.Equal(t, before, b.Days()[0].Activities[0])
	})
}

func TestItineraryBuilder_ReplaceAll(t *testing.T) {
	t.Run("正常なプランは全置換され新しいIDが採番される", func(t *testing.T) {
		b := NewItineraryBuilder()
		oldDayID := b.Days()[0].ID
		b.AddActivity(oldDayID)

		plan := &model.GeneratedPlan{
			Days: []model.GeneratedDay{
				{
					Day:   1,
					Title: "Arrival & Local Exploration",
					Activities: []model.GeneratedActivity{
						{Time: "10:00 AM", Activity: "Check-in at hotel", Location: "Nainital"},
						{Time: "2:00 PM", Activity: "Local market visit", Location: "Nainital"},
					},
				},
				{
					Day:        2,
					Title:      "Adventure & Sightseeing",
					Activities: []model.GeneratedActivity{},
				},
			},
		}

		require.NoError(t, b.ReplaceAll(plan))

		days := b.Days()
		require.Len(t, days, 2)
		assert.Equal(t, "Arrival & Local Exploration", days[0].Title)
		assert.Len(t, days[0].Activities, 2)
		assert.Equal(t, "Check-in at hotel", days[0].Activities[0].Activity)

		// 以前のDayは跡形もなく、IDはすべて新規
		assert.NotEqual(t, oldDayID, days[0].ID)
		assert.NotEqual(t, days[0].ID, days[1].ID)
	})

	t.Run("空のプランは状態を一切変更しない", func(t *testing.T) {
		b := NewItineraryBuilder()
		dayID := b.Days()[0].ID
		b.AddActivity(dayID)
		before := b.Days()

		err := b.ReplaceAll(&model.GeneratedPlan{})
		require.Error(t, err)
		assert.Equal(t, before, b.Days())

		err = b.ReplaceAll(&model.GeneratedPlan{Days: nil})
		require.Error(t, err)
		assert.Equal(t, before, b.Days())
	})

	t.Run("連番が欠けている場合は位置から補完する", func(t *testing.T) {
		b := NewItineraryBuilder()
		plan := &model.GeneratedPlan{
			Days: []model.GeneratedDay{
				{Title: "First"},
				{Title: "Second"},
			},
		}
		require.NoError(t, b.ReplaceAll(plan))

		days := b.Days()
		assert.Equal(t, 1, days[0].Day)
		assert.Equal(t, 2, days[1].Day)
	})
}

func TestItineraryBuilder_DerivedReads(t *testing.T) {
	b := NewItineraryBuilder()
	dayID := b.Days()[0].ID
	b.AddActivity(dayID)
	b.AddActivity(dayID)
	day2 := b.AddDay()
	b.AddActivity(day2.ID)

	assert.Equal(t, 2, b.DayCount())
	assert.Equal(t, 3, b.ActivityCount())

	// 概算費用 = 基準料金 × 日数
	assert.Equal(t, 20000, b.EstimatedCost(model.BudgetLow))
	assert.Equal(t, 40000, b.EstimatedCost(model.BudgetMedium))
	assert.Equal(t, 70000, b.EstimatedCost(model.BudgetHigh))
	assert.Equal(t, 0, b.EstimatedCost("Luxury")) // 未定義のレベル

	summary := b.Summary(model.BudgetMedium)
	assert.Equal(t, 2, summary.DayCount)
	assert.Equal(t, 3, summary.ActivityCount)
	assert.Equal(t, "₹40000", summary.EstimatedCost)
}

func TestItineraryBuilder_IDUniquenessUnderRapidCreation(t *testing.T) {
	b := NewItineraryBuilder()
	dayID := b.Days()[0].ID

	// 同一瞬間に大量生成してもIDは衝突しない
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		b.AddActivity(dayID)
	}
	for _, a := range b.Days()[0].Activities {
		require.False(t, seen[a.ID], fmt.Sprintf("activity ID %s が重複", a.ID))
		seen[a.ID] = true
	}
	assert.Len(t, seen, 200)
}

func TestItineraryBuilder_SnapshotIsolation(t *testing.T) {
	b := NewItineraryBuilder()
	dayID := b.Days()[0].ID
	b.AddActivity(dayID)

	// スナップショットへの変更は内部状態に影響しない
	snapshot := b.Days()
	snapshot[0].Title = "mutated"
	snapshot[0].Activities[0].Activity = "mutated"

	assert.Equal(t, model.SeedDayTitle, b.Days()[0].Title)
	assert.Equal(t, model.DefaultActivityName, b.Days()[0].Activities[0].Activity)
}
