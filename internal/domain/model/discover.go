package model

// Event 観光イベント・祭事（読み取り専用の外部データ）
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"` // "2025-01-15" 形式の表示用文字列
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Month       int    `json:"month"` // 月別フィルタ用（1-12）
}

// TravelRoute キュレーション済みのモデルコース
type TravelRoute struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Places   []string `json:"places"`
	Duration string   `json:"duration"`
	Distance string   `json:"distance"`
}
