package model

// PinState マップ上のピンの表示状態
// 選択とホバーは独立したフラグで、両方立っている場合は選択が優先される
type PinState string

const (
	PinStateIdle     PinState = "idle"     // 通常マーカー
	PinStateHovered  PinState = "hovered"  // 一時的なラベル表示
	PinStateSelected PinState = "selected" // 固定ラベル＋詳細パネル
)

// ProjectedPoint ビューポート内のパーセント座標（[0,100]範囲、境界外も許容）
type ProjectedPoint struct {
	X float64 `json:"x"` // 左端からの割合（%）
	Y float64 `json:"y"` // 上端からの割合（%）
}

// MapPin マップ描画用の1ピン分のデータ（投影座標＋表示状態）
type MapPin struct {
	Attraction Attraction     `json:"attraction"`
	Position   ProjectedPoint `json:"position"`
	State      PinState       `json:"state"`
	InBounds   bool           `json:"in_bounds"` // 境界ボックス内ならtrue（外でも描画は許容）
}
