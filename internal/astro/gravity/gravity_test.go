package gravity_test

import (
	"math"
	"testing"

	"starsystem-server/internal/astro/gravity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForce(t *testing.T) {
	// Reference values from
	// https://www.physicsclassroom.com/class/circles/Lesson-3/Newton-s-Law-of-Universal-Gravitation
	cases := []struct {
		name       string
		massOne    float64
		massTwo    float64
		distanceKm float64
		want       float64
	}{
		{"person on Earth", 100, 5.98e24, 6.38e3, 980},
		{"child on Earth", 40, 5.98e24, 6.38e3, 392},
		{"person in low orbit", 70, 5.98e24, 6.60e3, 641},
		{"two people a meter apart", 70, 70, 0.001, 3.27e-7},
		{"person and the Moon", 70, 7.34e22, 1.71e3, 117},
		{"person near Jupiter", 70, 1.901e27, 6.98e4, 1823},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gravity.Force(tc.massOne, tc.massTwo, tc.distanceKm)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, got, 0.005)
		})
	}
}

func TestForceRejectsNonPositiveInputs(t *testing.T) {
	cases := [][3]float64{
		{-1000, 1000, 1000},
		{1000, -1000, 1000},
		{1000, 1000, -1000},
		{0, 1000, 1000},
		{1000, 0, 1000},
		{1000, 1000, 0},
		{0, 0, 0},
		{math.NaN(), 1000, 1000},
		{1000, 1000, math.Inf(1)},
	}
	for _, tc := range cases {
		_, err := gravity.Force(tc[0], tc[1], tc[2])
		assert.Error(t, err)
	}
}

func TestAcceleration(t *testing.T) {
	cases := []struct {
		name     string
		massKg   float64
		radiusKm float64
		want     float64
	}{
		{"Earth", 5.972e24, 6371, 9.81},
		{"Mars", 6.417e23, 3389.5, 3.72},
		{"Moon", 7.342e22, 1737.4, 1.62},
		{"Jupiter", 1.898e27, 69911, 24.79},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gravity.Acceleration(tc.massKg, tc.radiusKm)
			require.NoError(t, err)
			// The mass/radius estimate ignores rotation and oblateness, so
			// the tolerance is loose for the fast rotators.
			assert.InEpsilon(t, tc.want, got, 0.05)
		})
	}
}

func TestAccelerationRejectsNonPositiveInputs(t *testing.T) {
	cases := [][2]float64{
		{-1000, 1000},
		{1000, -1000},
		{0, 1000},
		{1000, 0},
		{0, 0},
	}
	for _, tc := range cases {
		_, err := gravity.Acceleration(tc[0], tc[1])
		assert.Error(t, err)
	}
}

func TestSchwarzschildRadius(t *testing.T) {
	cases := []struct {
		name   string
		massKg float64
		wantM  float64
	}{
		{"Sun", 1.989e30, 2953},
		{"Earth", 5.972e24, 0.00887},
		{"Sagittarius A*", 8.26e36, 1.227e10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gravity.SchwarzschildRadius(tc.massKg)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.wantM, got, 0.02)
		})
	}
}

func TestSchwarzschildRadiusRejectsNonPositiveMass(t *testing.T) {
	for _, mass := range []float64{-1000, -1, 0} {
		_, err := gravity.SchwarzschildRadius(mass)
		assert.Error(t, err)
	}
}
