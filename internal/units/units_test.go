package units

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, name := range []string{"kilometers", "miles", "meters", "degrees", "radians"} {
		u, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, Unit(name), u)
	}

	u, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Kilometers, u, "empty means the default")

	_, err = Parse("furlongs")
	assert.Error(t, err)
}

func TestFromMeters(t *testing.T) {
	assert.InDelta(t, 1, Kilometers.FromMeters(1000), 1e-12)
	assert.InDelta(t, 1, Miles.FromMeters(1609.344), 1e-12)
	assert.InDelta(t, 1609.344, Meters.FromMeters(1609.344), 1e-12)
	assert.InDelta(t, 1, Radians.FromMeters(orb.EarthRadius), 1e-12)
	assert.InDelta(t, 180, Degrees.FromMeters(orb.EarthRadius*math.Pi), 1e-9)
}
