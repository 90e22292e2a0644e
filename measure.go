package geopath

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/pdrpinto/geopath/internal/units"
)

// distance is the great-circle distance between a and b in the given unit
// system.
func distance(a, b orb.Point, unit units.Unit) float64 {
	return unit.FromMeters(geo.DistanceHaversine(a, b))
}

// combinedBound is the bounding box around the obstacle rings and the
// endpoints. It builds a local union and leaves all inputs untouched.
func combinedBound(rings []orb.Ring, endpoints ...orb.Point) orb.Bound {
	bound := orb.MultiPoint(endpoints).Bound()
	for _, ring := range rings {
		bound = bound.Union(ring.Bound())
	}
	return bound
}

// scaleBound grows (or shrinks) a bound by a factor about its center.
func scaleBound(bound orb.Bound, factor float64) orb.Bound {
	centerX := (bound.Min[0] + bound.Max[0]) / 2
	centerY := (bound.Min[1] + bound.Max[1]) / 2
	halfWidth := (bound.Max[0] - bound.Min[0]) / 2 * factor
	halfHeight := (bound.Max[1] - bound.Min[1]) / 2 * factor
	return orb.Bound{
		Min: orb.Point{centerX - halfWidth, centerY - halfHeight},
		Max: orb.Point{centerX + halfWidth, centerY + halfHeight},
	}
}
