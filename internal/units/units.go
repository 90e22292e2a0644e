// Package units converts metric distances into the unit systems the public
// API accepts.
package units

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Unit is a recognized distance unit system.
type Unit string

const (
	Kilometers Unit = "kilometers"
	Miles      Unit = "miles"
	Meters     Unit = "meters"
	Degrees    Unit = "degrees"
	Radians    Unit = "radians"
)

const metersPerMile = 1609.344

// Parse validates a unit name. The empty string means the default,
// kilometers.
func Parse(name string) (Unit, error) {
	switch Unit(name) {
	case "":
		return Kilometers, nil
	case Kilometers, Miles, Meters, Degrees, Radians:
		return Unit(name), nil
	}
	return "", fmt.Errorf("unknown units %q", name)
}

// FromMeters converts a distance in meters into u.
// Angular units are taken on a sphere of radius orb.EarthRadius, matching
// the distance computation in orb/geo.
func (u Unit) FromMeters(meters float64) float64 {
	switch u {
	case Miles:
		return meters / metersPerMile
	case Meters:
		return meters
	case Degrees:
		return meters / orb.EarthRadius * 180 / math.Pi
	case Radians:
		return meters / orb.EarthRadius
	default:
		return meters / 1000
	}
}
