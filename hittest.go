package geopath

import "github.com/paulmach/orb"

// ringContains reports whether point lies inside the ring under the even-odd
// rule: a horizontal ray from the point crosses an odd number of edges.
//
// The previous-vertex index advances on every iteration, the textbook form
// of the algorithm. A horizontal edge (equal y endpoints) never satisfies
// the straddle test, so the x-intersection division below is never evaluated
// with a zero denominator. Points exactly on an edge or vertex classify to
// whichever side the accumulated toggles land on; callers must not rely on
// either outcome.
func ringContains(ring orb.Ring, point orb.Point) bool {
	x, y := point[0], point[1]
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// anyRingContains applies ringContains across a whole obstacle set.
func anyRingContains(rings []orb.Ring, point orb.Point) bool {
	for _, ring := range rings {
		if ringContains(ring, point) {
			return true
		}
	}
	return false
}
