package repository

import (
	"github.com/paulmach/orb"

	"Yatra-App/internal/domain/model"
)

// AttractionToPoint Attractionの位置をorb.Pointに変換
func AttractionToPoint(a *model.Attraction) orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// FilterWithinBound 境界ボックス内のスポットだけを返す
// マップ表示でキャンバス外のピンを除外する場合に使用する
func FilterWithinBound(attractions []model.Attraction, bound orb.Bound) []model.Attraction {
	var result []model.Attraction
	for _, a := range attractions {
		if bound.Contains(AttractionToPoint(&a)) {
			result = append(result, a)
		}
	}
	return result
}
