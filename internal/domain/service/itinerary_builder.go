package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"Yatra-App/internal/domain/model"
)

// ItineraryBuilder は旅程（Day/Activityの順序付きコレクション）を排他的に所有するサービス
// DayはIDをキーにしたフラットなテーブルと順序リストで管理し、所有権と変更を明示的にする
// 他コンポーネントからの直接変更は不可で、すべての操作はこのビルダー経由で行う
type ItineraryBuilder struct {
	mu    sync.Mutex
	days  map[string]*model.ItineraryDay
	order []string // 表示順のDay IDリスト
}

// NewItineraryBuilder はDay 1をシード済みの新しいビルダーを作成
func NewItineraryBuilder() *ItineraryBuilder {
	b := &ItineraryBuilder{
		days: make(map[string]*model.ItineraryDay),
	}
	seed := &model.ItineraryDay{
		ID:         uuid.New().String(),
		Day:        1,
		Title:      model.SeedDayTitle,
		Activities: []model.Activity{},
	}
	b.days[seed.ID] = seed
	b.order = append(b.order, seed.ID)
	return b
}

// AddDay は新しいDayを末尾に追加し、そのスナップショットを返す
// 連番は現在の日数+1（上限なし）
func (b *ItineraryBuilder) AddDay() model.ItineraryDay {
	b.mu.Lock()
	defer b.mu.Unlock()

	day := &model.ItineraryDay{
		ID:         uuid.New().String(),
		Day:        len(b.order) + 1,
		Title:      fmt.Sprintf(model.DefaultDayTitleFormat, len(b.order)+1),
		Activities: []model.Activity{},
	}
	b.days[day.ID] = day
	b.order = append(b.order, day.ID)
	return copyDay(day)
}

// RemoveDay は指定IDのDayを削除する（存在しない場合は何もしない）
// 残ったDayの連番・タイトルは振り直さない
func (b *ItineraryBuilder) RemoveDay(dayID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.days[dayID]; !ok {
		return
	}
	delete(b.days, dayID)
	for i, id := range b.order {
		if id == dayID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// RenameDay は指定Dayのタイトルを置き換える（存在しない場合は何もしない）
func (b *ItineraryBuilder) RenameDay(dayID, title string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if day, ok := b.days[dayID]; ok {
		day.Title = title
	}
}

// AddActivity は指定Dayの末尾にデフォルト値のActivityを追加する
// Dayが存在しない場合は何もしない
func (b *ItineraryBuilder) AddActivity(dayID string) {
	b.AddActivityDetail(dayID, model.DefaultActivityTime, model.DefaultActivityName, model.DefaultActivityPlace)
}

// AddActivityDetail は指定Dayの末尾に値を指定してActivityを追加する
func (b *ItineraryBuilder) AddActivityDetail(dayID, time, name, location string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	day, ok := b.days[dayID]
	if !ok {
		return
	}
	day.Activities = append(day.Activities, model.Activity{
		ID:       uuid.New().String(),
		Time:     time,
		Activity: name,
		Location: location,
	})
}

// RemoveActivity は指定DayからActivityを削除する（どちらのIDも不明なら何もしない）
func (b *ItineraryBuilder) RemoveActivity(dayID, activityID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	day, ok := b.days[dayID]
	if !ok {
		return
	}
	for i, a := range day.Activities {
		if a.ID == activityID {
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			return
		}
	}
}

// UpdateActivityField は指定Activityのフィールドを1つだけ置き換える
// ID・フィールド名が解決できない場合は何もしない（他フィールドは常に不変）
func (b *ItineraryBuilder) UpdateActivityField(dayID, activityID, field, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	day, ok := b.days[dayID]
	if !ok {
		return
	}
	for i := range day.Activities {
		if day.Activities[i].ID != activityID {
			continue
		}
		switch field {
		case model.ActivityFieldTime:
			day.Activities[i].Time = value
		case model.ActivityFieldActivity:
			day.Activities[i].Activity = value
		case model.ActivityFieldLocation:
			day.Activities[i].Location = value
		}
		return
	}
}

// ReplaceAll は旅程全体を生成済みプランで置き換える
// 検証に失敗した場合は既存の状態を一切変更せずエラーを返す（中途半端な状態は作らない）
// 生成側のIDは引き継がず、内部で新しいIDを採番する
func (b *ItineraryBuilder) ReplaceAll(plan *model.GeneratedPlan) error {
	if plan.IsEmpty() {
		return fmt.Errorf("生成されたプランに日程が含まれていません")
	}

	// 先に新しいテーブルを完成させてから差し替える
	newDays := make(map[string]*model.ItineraryDay, len(plan.Days))
	newOrder := make([]string, 0, len(plan.Days))
	for i, gd := range plan.Days {
		dayNum := gd.Day
		if dayNum <= 0 {
			dayNum = i + 1
		}
		day := &model.ItineraryDay{
			ID:         uuid.New().String(),
			Day:        dayNum,
			Title:      gd.Title,
			Activities: make([]model.Activity, 0, len(gd.Activities)),
		}
		for _, ga := range gd.Activities {
			day.Activities = append(day.Activities, model.Activity{
				ID:       uuid.New().String(),
				Time:     ga.Time,
				Activity: ga.Activity,
				Location: ga.Location,
			})
		}
		newDays[day.ID] = day
		newOrder = append(newOrder, day.ID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.days = newDays
	b.order = newOrder
	return nil
}

// Days は表示順のDayスナップショットを返す（内部状態への参照は渡さない）
func (b *ItineraryBuilder) Days() []model.ItineraryDay {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]model.ItineraryDay, 0, len(b.order))
	for _, id := range b.order {
		result = append(result, copyDay(b.days[id]))
	}
	return result
}

// LastDayID は表示順で最後のDayのIDを返す（0日の場合は空文字列）
func (b *ItineraryBuilder) LastDayID() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.order) == 0 {
		return ""
	}
	return b.order[len(b.order)-1]
}

// DayCount は現在の日数を返す
func (b *ItineraryBuilder) DayCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

// ActivityCount は全Dayを合算したアクティビティ総数を返す
func (b *ItineraryBuilder) ActivityCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for _, day := range b.days {
		count += len(day.Activities)
	}
	return count
}

// EstimatedCost は予算レベルと日数から概算費用を計算する（純粋関数）
// 不明な予算レベルは0を返す
func (b *ItineraryBuilder) EstimatedCost(budget string) int {
	return model.BudgetBaseRates[budget] * b.DayCount()
}

// Summary は旅程のサマリーを返す
func (b *ItineraryBuilder) Summary(budget string) model.ItinerarySummary {
	return model.ItinerarySummary{
		DayCount:      b.DayCount(),
		ActivityCount: b.ActivityCount(),
		EstimatedCost: fmt.Sprintf("₹%d", b.EstimatedCost(budget)),
		Budget:        budget,
	}
}

// copyDay はDayのディープコピーを作成する
func copyDay(day *model.ItineraryDay) model.ItineraryDay {
	c := *day
	c.Activities = make([]model.Activity, len(day.Activities))
	copy(c.Activities, day.Activities)
	return c
}
