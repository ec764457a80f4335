package repository

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Yatra-App/internal/domain/model"
)

func TestAttractionToPoint(t *testing.T) {
	a := &model.Attraction{Latitude: 30.0869, Longitude: 78.2676}

	point := AttractionToPoint(a)

	// orb.Pointは経度・緯度の順
	assert.Equal(t, 78.2676, point.Lon())
	assert.Equal(t, 30.0869, point.Lat())
}

func TestFilterWithinBound(t *testing.T) {
	attractions := []model.Attraction{
		{ID: "in", Latitude: 30.0, Longitude: 79.0},
		{ID: "out", Latitude: 25.0, Longitude: 75.0},
	}
	bound := orb.Bound{Min: orb.Point{77.5, 29.0}, Max: orb.Point{81.0, 31.5}}

	result := FilterWithinBound(attractions, bound)

	require.Len(t, result, 1)
	assert.Equal(t, "in", result[0].ID)

	assert.Empty(t, FilterWithinBound(nil, bound))
}
