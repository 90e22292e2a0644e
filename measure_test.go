package geopath

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/pdrpinto/geopath/internal/units"
)

func TestDistanceUnits(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{0, 1}

	// one degree along a meridian
	assert.InDelta(t, 1, distance(a, b, units.Degrees), 1e-9)
	assert.InDelta(t, 111.32, distance(a, b, units.Kilometers), 0.1)
	assert.InDelta(t, 69.17, distance(a, b, units.Miles), 0.1)
	assert.InDelta(t, distance(a, b, units.Meters), 1000*distance(a, b, units.Kilometers), 1e-6)

	assert.Zero(t, distance(a, a, units.Kilometers))
}

func TestCombinedBound(t *testing.T) {
	rings := []orb.Ring{
		{{0, 0}, {5, 0}, {5, 5}, {0, 5}, {0, 0}},
		{{8, 8}, {9, 8}, {9, 9}, {8, 9}, {8, 8}},
	}
	bound := combinedBound(rings, orb.Point{-2, 1}, orb.Point{3, 12})

	assert.Equal(t, orb.Point{-2, 0}, bound.Min)
	assert.Equal(t, orb.Point{9, 12}, bound.Max)
}

func TestScaleBound(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
	scaled := scaleBound(bound, 1.15)

	assert.InDelta(t, -0.75, scaled.Min[0], 1e-12)
	assert.InDelta(t, -0.75, scaled.Min[1], 1e-12)
	assert.InDelta(t, 10.75, scaled.Max[0], 1e-12)
	assert.InDelta(t, 10.75, scaled.Max[1], 1e-12)

	// scaling is about the center, so the center does not move
	assert.InDelta(t, 5, (scaled.Min[0]+scaled.Max[0])/2, 1e-12)
	assert.InDelta(t, 5, (scaled.Min[1]+scaled.Max[1])/2, 1e-12)
}
