package model

// Attraction 観光スポット（外部データソースから供給される読み取り専用モデル）
type Attraction struct {
	ID          string   `json:"id" db:"id"`                   // ユニークなスポットID
	Name        string   `json:"name" db:"name"`               // スポット名
	Description string   `json:"description" db:"description"` // 説明文
	Category    string   `json:"category" db:"category"`       // カテゴリ（単一文字列）
	Latitude    float64  `json:"latitude" db:"latitude"`       // 緯度（十進度）
	Longitude   float64  `json:"longitude" db:"longitude"`     // 経度（十進度）
	Image       string   `json:"image" db:"image"`             // 画像URL
	Rating      float64  `json:"rating" db:"rating"`           // 評価値
	BestTime    string   `json:"bestTime" db:"best_time"`      // ベストシーズン
	Activities  []string `json:"activities" db:"activities"`   // 体験できるアクティビティ
}

// MatchesCategory カテゴリフィルタに一致するかチェック（"All"は全件一致）
func (a *Attraction) MatchesCategory(category string) bool {
	return category == "" || category == CategoryAll || a.Category == category
}
