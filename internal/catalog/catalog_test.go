package catalog_test

import (
	"testing"

	"starsystem-server/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	entries := c.All()
	assert.Len(t, entries, 11)

	sun, ok := c.Get("Sun")
	require.True(t, ok)
	assert.Equal(t, "star", sun.Kind)
	assert.InEpsilon(t, 1.989e30, sun.MassKg, 1e-9)
	assert.Greater(t, sun.MeanTemperatureK, 0.0)
	assert.Empty(t, sun.Primary)

	earth, ok := c.Get("Earth")
	require.True(t, ok)
	assert.Equal(t, "planet", earth.Kind)
	assert.Equal(t, "Sun", earth.Primary)
	assert.InEpsilon(t, 1.496e8, earth.SemimajorAxisKm, 1e-9)

	moon, ok := c.Get("Moon")
	require.True(t, ok)
	assert.Equal(t, "Earth", moon.Primary)

	sgrA, ok := c.Get("Sagittarius A*")
	require.True(t, ok)
	assert.Equal(t, "black_hole", sgrA.Kind)
	assert.Zero(t, sgrA.RadiusKm)

	_, ok = c.Get("Planet Nine")
	assert.False(t, ok)
}

func TestLoadOrbitalReferencesResolve(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, entry := range c.All() {
		if entry.Primary == "" {
			continue
		}
		primary, ok := c.Get(entry.Primary)
		require.True(t, ok, "primary %q of %q missing from catalog", entry.Primary, entry.Name)
		assert.Greater(t, entry.SemimajorAxisKm, primary.RadiusKm+entry.RadiusKm,
			"%q should orbit outside the combined radii", entry.Name)
		assert.GreaterOrEqual(t, entry.Eccentricity, 0.0)
		assert.Less(t, entry.Eccentricity, 1.0)
	}
}
