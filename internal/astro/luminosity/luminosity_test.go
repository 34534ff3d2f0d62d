package luminosity_test

import (
	"testing"

	"starsystem-server/internal/astro/luminosity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStefanBoltzmann(t *testing.T) {
	// The Sun, treated as a black body, should land close to its measured
	// luminosity of 3.828e26 W.
	got, err := luminosity.StefanBoltzmann(6.963e5, 5778)
	require.NoError(t, err)
	assert.InEpsilon(t, 3.828e26, got, 0.01)
}

func TestStefanBoltzmannRejectsNonPositiveInputs(t *testing.T) {
	cases := [][2]float64{
		{-1000, 1000},
		{1000, -1000},
		{-1000, -1000},
		{0, 1000},
		{1000, 0},
		{0, 0},
	}
	for _, tc := range cases {
		_, err := luminosity.StefanBoltzmann(tc[0], tc[1])
		assert.Error(t, err)
	}
}

func TestEquilibriumTemperature(t *testing.T) {
	cases := []struct {
		name            string
		semimajorAxisKm float64
		solarRadiusKm   float64
		solarTempK      float64
		want            float64
	}{
		{"Earth", 1.496e8, 6.963e5, 5778, 279},
		{"Mercury", 5.79e7, 6.963e5, 5778, 448},
		{"Neptune", 4.4951e9, 6.963e5, 5778, 50.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := luminosity.EquilibriumTemperature(tc.semimajorAxisKm, tc.solarRadiusKm, tc.solarTempK)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, got, 0.01)
		})
	}
}

func TestEquilibriumTemperatureRejectsNonPositiveInputs(t *testing.T) {
	cases := [][3]float64{
		{-1, 1000, 1000},
		{1000, -1, 1000},
		{1000, 1000, -1},
		{0, 0, 0},
	}
	for _, tc := range cases {
		_, err := luminosity.EquilibriumTemperature(tc[0], tc[1], tc[2])
		assert.Error(t, err)
	}
}
