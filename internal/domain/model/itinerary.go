package model

// Activity 1日のプラン内の最小単位（時刻・内容・場所はすべて自由記述）
type Activity struct {
	ID       string `json:"id"`       // 生成時に割り当てられる不変の一意ID
	Time     string `json:"time"`     // 表示用の時刻文字列（パース・検証しない）
	Activity string `json:"activity"` // アクティビティの内容
	Location string `json:"location"` // 場所名
}

// ItineraryDay 旅程の1日分を表すモデル
type ItineraryDay struct {
	ID         string     `json:"id"`         // DayのユニークID（ActivityのIDとは独立）
	Day        int        `json:"day"`        // 表示用の1始まり連番（個別削除では振り直さない）
	Title      string     `json:"title"`      // ユーザーが編集可能なタイトル
	Activities []Activity `json:"activities"` // 挿入順＝表示順
}

// ActivityField UpdateActivityFieldで更新可能なフィールド名
const (
	ActivityFieldTime     = "time"
	ActivityFieldActivity = "activity"
	ActivityFieldLocation = "location"
)

// IsValidActivityField 更新可能なフィールド名かチェック
func IsValidActivityField(field string) bool {
	switch field {
	case ActivityFieldTime, ActivityFieldActivity, ActivityFieldLocation:
		return true
	}
	return false
}

// ItinerarySummary 旅程のサマリー情報（日数・アクティビティ総数・概算費用）
type ItinerarySummary struct {
	DayCount      int    `json:"day_count"`
	ActivityCount int    `json:"activity_count"`
	EstimatedCost string `json:"estimated_cost"` // "₹60000" 形式
	Budget        string `json:"budget"`
}
