package service

import (
	"github.com/paulmach/orb"

	"Yatra-App/internal/domain/model"
)

// MapProjection は地理座標からビューポート内のパーセント座標への線形写像を行う
// 地球の曲率は考慮せず、固定の境界ボックス内で線形補間する
type MapProjection struct {
	bound orb.Bound // Min=(minLng,minLat), Max=(maxLng,maxLat)
}

// DefaultMapBound はウッタラーカンド州をカバーする固定の境界ボックス
var DefaultMapBound = orb.Bound{
	Min: orb.Point{77.5, 29.0},
	Max: orb.Point{81.0, 31.5},
}

// NewMapProjection は指定した境界ボックスで投影サービスを作成
func NewMapProjection(bound orb.Bound) *MapProjection {
	return &MapProjection{bound: bound}
}

// NewDefaultMapProjection はデフォルトの境界ボックスで投影サービスを作成
func NewDefaultMapProjection() *MapProjection {
	return NewMapProjection(DefaultMapBound)
}

// Project は緯度経度をパーセント座標に変換する
// 経度は右方向、緯度は上方向に増えるがY軸は下向きなのでY項は反転する
// 境界外の入力はクランプせず [0,100] の外の値をそのまま返す
// （境界外のピンはエラーにせず、キャンバス外にそのまま描画する）
func (p *MapProjection) Project(lat, lng float64) model.ProjectedPoint {
	minLng, minLat := p.bound.Min.Lon(), p.bound.Min.Lat()
	maxLng, maxLat := p.bound.Max.Lon(), p.bound.Max.Lat()

	return model.ProjectedPoint{
		X: (lng - minLng) / (maxLng - minLng) * 100,
		Y: (maxLat - lat) / (maxLat - minLat) * 100,
	}
}

// InBounds は座標が境界ボックス内にあるかチェック
func (p *MapProjection) InBounds(lat, lng float64) bool {
	return p.bound.Contains(orb.Point{lng, lat})
}

// ProjectAttraction はスポットの位置を投影する
func (p *MapProjection) ProjectAttraction(a *model.Attraction) model.ProjectedPoint {
	return p.Project(a.Latitude, a.Longitude)
}

// Bound は境界ボックスを返す
func (p *MapProjection) Bound() orb.Bound {
	return p.bound
}
