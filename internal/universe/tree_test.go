package universe_test

import (
	"encoding/json"
	"testing"

	"starsystem-server/internal/body"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/universe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func solBodies() []body.Body {
	return []body.Body{
		{ID: 1, UniverseID: 1, Name: "Sun", Kind: body.KindStar, MassKg: 1.989e30, RadiusKm: 6.963e5, TemperatureK: float64Ptr(5778)},
		{ID: 2, UniverseID: 1, Name: "Earth", Kind: body.KindPlanet, MassKg: 5.972e24, RadiusKm: 6371},
		{ID: 3, UniverseID: 1, Name: "Mercury", Kind: body.KindPlanet, MassKg: 3.285e23, RadiusKm: 2439.7},
		{ID: 4, UniverseID: 1, Name: "Moon", Kind: body.KindMoon, MassKg: 7.342e22, RadiusKm: 1737.4},
		{ID: 5, UniverseID: 1, Name: "Sagittarius A*", Kind: body.KindBlackHole, MassKg: 8.26e36, RadiusKm: 1.227e7},
	}
}

// Orbits as the repository returns them, sorted by semi-major axis.
func solOrbits() []orbit.Orbit {
	return []orbit.Orbit{
		{ID: 3, UniverseID: 1, PrimaryBodyID: 2, OrbitingBodyID: 4, SemimajorAxisKm: 3.844e5, Eccentricity: 0.0549},
		{ID: 2, UniverseID: 1, PrimaryBodyID: 1, OrbitingBodyID: 3, SemimajorAxisKm: 5.79e7, Eccentricity: 0.2056},
		{ID: 1, UniverseID: 1, PrimaryBodyID: 1, OrbitingBodyID: 2, SemimajorAxisKm: 1.496e8, Eccentricity: 0.0167},
	}
}

func TestBuildTree(t *testing.T) {
	roots := universe.BuildTree(solBodies(), solOrbits())

	require.Len(t, roots, 2)

	sun := roots[0]
	assert.Equal(t, "Sun", sun.Name)
	assert.Nil(t, sun.OrbitID)
	require.Len(t, sun.Satellites, 2)

	// Innermost first.
	assert.Equal(t, "Mercury", sun.Satellites[0].Name)
	assert.Equal(t, "Earth", sun.Satellites[1].Name)

	earth := sun.Satellites[1]
	require.NotNil(t, earth.SemimajorAxisKm)
	assert.InDelta(t, 1.496e8, *earth.SemimajorAxisKm, 1)
	require.Len(t, earth.Satellites, 1)
	assert.Equal(t, "Moon", earth.Satellites[0].Name)

	sgrA := roots[1]
	assert.Equal(t, "Sagittarius A*", sgrA.Name)
	assert.Empty(t, sgrA.Satellites)

	// Leaves carry an empty slice so they serialize as [] rather than null.
	assert.NotNil(t, sgrA.Satellites)
	assert.NotNil(t, earth.Satellites[0].Satellites)
}

func TestBuildTreeEmptyUniverse(t *testing.T) {
	roots := universe.BuildTree(nil, nil)
	assert.Empty(t, roots)
	assert.NotNil(t, roots)
}

func TestTreeJSONUsesEmptyArrays(t *testing.T) {
	tree := universe.Tree{UniverseID: 9, Roots: universe.BuildTree(nil, nil)}

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"universe_id": 9, "roots": []}`, string(data))

	bodies := []body.Body{{ID: 1, UniverseID: 9, Name: "Vega", Kind: body.KindStar, MassKg: 4.25e30, RadiusKm: 1.64e6, TemperatureK: float64Ptr(9602)}}
	data, err = json.Marshal(universe.Tree{UniverseID: 9, Roots: universe.BuildTree(bodies, nil)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"satellites":[]`)
}

func TestUntethered(t *testing.T) {
	untethered := universe.Untethered(solBodies(), solOrbits())

	require.Len(t, untethered, 1)
	assert.Equal(t, "Sagittarius A*", untethered[0].Name)
}

func TestUntetheredNoOrbits(t *testing.T) {
	bodies := solBodies()
	assert.Len(t, universe.Untethered(bodies, nil), len(bodies))
}
