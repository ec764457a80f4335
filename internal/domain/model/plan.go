package model

import "time"

// GeneratePlanRequest AI旅程生成のリクエスト
type GeneratePlanRequest struct {
	Destination  string `json:"destination" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,min=1,max=14"`
	Budget       string `json:"budget" validate:"required,oneof=Low Medium High"`
}

// GeneratedPlan 外部ジェネレーターが返す旅程ペイロード
// ReplaceAll はこの形をそのまま消費する（フロントエンドと共有する固定フォーマット）
type GeneratedPlan struct {
	Days []GeneratedDay `json:"days"`
}

// GeneratedDay 生成された1日分のプラン
type GeneratedDay struct {
	Day        int                 `json:"day"`
	Title      string              `json:"title"`
	Activities []GeneratedActivity `json:"activities"`
}

// GeneratedActivity 生成された1アクティビティ
type GeneratedActivity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// IsEmpty 日が1つも含まれていないかチェック
func (p *GeneratedPlan) IsEmpty() bool {
	return p == nil || len(p.Days) == 0
}

// FirestoreItinerarySnapshot Firestoreに保存する共有用スナップショット
type FirestoreItinerarySnapshot struct {
	Days     []ItineraryDay `firestore:"days"`
	Budget   string         `firestore:"budget"`
	ExpireAt time.Time      `firestore:"expireAt"`
}

// SharedItinerary 共有IDつきの旅程スナップショット（レスポンス用）
type SharedItinerary struct {
	ShareID string         `json:"share_id"`
	Days    []ItineraryDay `json:"days"`
	Budget  string         `json:"budget"`
}

// ToSnapshot 共有用スナップショットに変換（TTL時間つき）
func (s *SharedItinerary) ToSnapshot(ttlHours int) *FirestoreItinerarySnapshot {
	return &FirestoreItinerarySnapshot{
		Days:     s.Days,
		Budget:   s.Budget,
		ExpireAt: time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToSharedItinerary スナップショットから共有用レスポンスに変換
func (f *FirestoreItinerarySnapshot) ToSharedItinerary(shareID string) *SharedItinerary {
	return &SharedItinerary{
		ShareID: shareID,
		Days:    f.Days,
		Budget:  f.Budget,
	}
}
