package universe_test

import (
	"testing"

	"starsystem-server/internal/universe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	stats := universe.ComputeStats(1, solBodies(), solOrbits())

	assert.Equal(t, 1, stats.UniverseID)
	assert.Equal(t, 5, stats.BodyCount)
	assert.Equal(t, 3, stats.OrbitCount)
	assert.Equal(t, 1, stats.UntetheredCount)

	assert.Equal(t, 1, stats.KindCounts["star"])
	assert.Equal(t, 2, stats.KindCounts["planet"])
	assert.Equal(t, 1, stats.KindCounts["moon"])
	assert.Equal(t, 1, stats.KindCounts["black_hole"])

	// Sagittarius A* dominates the total mass.
	assert.InEpsilon(t, 8.26e36, stats.TotalMassKg, 0.001)
	assert.InEpsilon(t, 8.26e36/5, stats.MeanMassKg, 0.001)
	assert.Greater(t, stats.StdDevMassKg, 0.0)

	// Mercury and Earth orbit the Sun; the Moon orbits Earth and has no
	// equilibrium temperature.
	require.NotNil(t, stats.MeanEquilibriumTempK)
	require.NotNil(t, stats.StdDevEquilibriumTempK)
	assert.InEpsilon(t, (448.0+279.0)/2, *stats.MeanEquilibriumTempK, 0.01)
	assert.Greater(t, *stats.StdDevEquilibriumTempK, 0.0)
}

func TestComputeStatsEmptyUniverse(t *testing.T) {
	stats := universe.ComputeStats(7, nil, nil)

	assert.Equal(t, 0, stats.BodyCount)
	assert.Equal(t, 0, stats.OrbitCount)
	assert.Equal(t, 0.0, stats.TotalMassKg)
	assert.Equal(t, 0.0, stats.MeanMassKg)
	assert.Nil(t, stats.MeanEquilibriumTempK)
}
