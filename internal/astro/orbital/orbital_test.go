package orbital_test

import (
	"testing"

	"starsystem-server/internal/astro/orbital"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sunMassKg = 1.989e30

func TestEllipseGeometry(t *testing.T) {
	cases := []struct {
		name           string
		semimajorKm    float64
		eccentricity   float64
		wantSemiminor  float64
		wantPerihelion float64
		wantAphelion   float64
	}{
		{"Earth", 1.496e8, 0.0167, 1.4958e8, 1.471e8, 1.521e8},
		{"Mars", 2.279e8, 0.0934, 2.269e8, 2.066e8, 2.492e8},
		{"Mercury", 5.79e7, 0.2056, 5.667e7, 4.6e7, 6.98e7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			semiminor, err := orbital.SemiminorAxis(tc.semimajorKm, tc.eccentricity)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.wantSemiminor, semiminor, 0.01)

			perihelion, err := orbital.Perihelion(tc.semimajorKm, tc.eccentricity)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.wantPerihelion, perihelion, 0.01)

			aphelion, err := orbital.Aphelion(tc.semimajorKm, tc.eccentricity)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.wantAphelion, aphelion, 0.01)
		})
	}
}

func TestEllipseGeometryRejectsInvalidInputs(t *testing.T) {
	cases := [][2]float64{
		{0, 0.5},
		{-1, 0.5},
		{1000, -0.1},
		{1000, 1},
		{1000, 2},
		{0, 1},
	}
	for _, tc := range cases {
		_, err := orbital.SemiminorAxis(tc[0], tc[1])
		assert.Error(t, err)
		_, err = orbital.Perihelion(tc[0], tc[1])
		assert.Error(t, err)
		_, err = orbital.Aphelion(tc[0], tc[1])
		assert.Error(t, err)
	}
}

func TestPeriod(t *testing.T) {
	cases := []struct {
		name           string
		semimajorKm    float64
		orbitingMassKg float64
		wantDays       float64
	}{
		{"Earth", 1.496e8, 5.972e24, 365.25},
		{"Mars", 2.279e8, 6.417e23, 687},
		{"Jupiter", 7.785e8, 1.898e27, 4333},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seconds, err := orbital.Period(tc.semimajorKm, sunMassKg, tc.orbitingMassKg)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.wantDays, seconds/orbital.SecondsPerDay, 0.01)
		})
	}
}

func TestPeriodRejectsNonPositiveInputs(t *testing.T) {
	cases := [][3]float64{
		{0, 1000, 1000},
		{-1, 1000, 1000},
		{1000, 0, 1000},
		{1000, -1, 1000},
		{1000, 1000, 0},
		{1000, 1000, -1},
		{0, 0, 0},
	}
	for _, tc := range cases {
		_, err := orbital.Period(tc[0], tc[1], tc[2])
		assert.Error(t, err)
	}
}
