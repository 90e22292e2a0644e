package geopath

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var squareRing = orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}

func TestRingContains(t *testing.T) {
	tests := []struct {
		name  string
		ring  orb.Ring
		point orb.Point
		want  bool
	}{
		{"center of square", squareRing, orb.Point{5, 5}, true},
		{"outside bounding box", squareRing, orb.Point{15, 15}, false},
		{"outside near edge", squareRing, orb.Point{-0.001, 5}, false},
		{"inside near edge", squareRing, orb.Point{0.001, 5}, true},
		{"below square", squareRing, orb.Point{5, -3}, false},
		{
			// horizontal edges never straddle the ray; the toggle test
			// must skip them without dividing by zero
			"horizontal edge aligned with point",
			orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			orb.Point{5, 0.5},
			true,
		},
		{
			"zero-length edge",
			orb.Ring{{0, 0}, {0, 10}, {0, 10}, {10, 10}, {10, 0}, {0, 0}},
			orb.Point{5, 5},
			true,
		},
		{
			// concave ring: the notch on the right side is outside even
			// though it sits inside the bounding box
			"notch of concave ring",
			orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 6}, {4, 6}, {4, 4}, {10, 4}, {10, 0}, {0, 0}},
			orb.Point{7, 5},
			false,
		},
		{
			"solid part of concave ring",
			orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 6}, {4, 6}, {4, 4}, {10, 4}, {10, 0}, {0, 0}},
			orb.Point{2, 5},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ringContains(tt.ring, tt.point))
		})
	}
}

// The previous-vertex index advances every iteration, so a point that a ray
// crosses through several edges of a star-shaped ring toggles once per
// crossing. This pins the textbook form of the even-odd loop.
func TestRingContainsTogglesPerCrossing(t *testing.T) {
	// At y=5 the only wall right of x=2 is the notch wall at x=4, so
	// x=2 is inside while x=7 (in the notch) and x=11 are outside.
	comb := orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 6}, {4, 6}, {4, 4}, {10, 4}, {10, 0}, {0, 0}}
	assert.True(t, ringContains(comb, orb.Point{2, 5}))
	assert.False(t, ringContains(comb, orb.Point{7, 5}))
	assert.False(t, ringContains(comb, orb.Point{11, 5}))
}

func TestAnyRingContains(t *testing.T) {
	rings := []orb.Ring{
		squareRing,
		{{20, 20}, {20, 30}, {30, 30}, {30, 20}, {20, 20}},
	}
	assert.True(t, anyRingContains(rings, orb.Point{25, 25}))
	assert.True(t, anyRingContains(rings, orb.Point{5, 5}))
	assert.False(t, anyRingContains(rings, orb.Point{15, 15}))
	assert.False(t, anyRingContains(nil, orb.Point{5, 5}))
}
