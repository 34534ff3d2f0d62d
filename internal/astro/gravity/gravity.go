// Package gravity implements Newtonian gravity estimates for celestial
// bodies. Distances are taken in kilometers and converted to SI internally;
// results are SI.
package gravity

import (
	"fmt"
	"math"

	"starsystem-server/internal/astro/constants"
)

// Force returns the gravitational force between two objects in Newtons,
// per Newton's law of universal gravitation. Masses are in kilograms, the
// distance between the objects in kilometers.
func Force(massOneKg, massTwoKg, distanceKm float64) (float64, error) {
	if err := positive("mass_one", massOneKg); err != nil {
		return 0, err
	}
	if err := positive("mass_two", massTwoKg); err != nil {
		return 0, err
	}
	if err := positive("distance", distanceKm); err != nil {
		return 0, err
	}

	distanceM := distanceKm * constants.MetersPerKilometer
	return constants.GravitationalConstant * massOneKg * massTwoKg / (distanceM * distanceM), nil
}

// Acceleration returns the gravitational acceleration at the surface of a
// body, in m/s^2. Mass in kilograms, radius in kilometers.
func Acceleration(massKg, radiusKm float64) (float64, error) {
	if err := positive("mass", massKg); err != nil {
		return 0, err
	}
	if err := positive("radius", radiusKm); err != nil {
		return 0, err
	}

	radiusM := radiusKm * constants.MetersPerKilometer
	return constants.GravitationalConstant * massKg / (radiusM * radiusM), nil
}

// SchwarzschildRadius returns the radius of a black hole's event horizon in
// meters, for a mass in kilograms.
func SchwarzschildRadius(massKg float64) (float64, error) {
	if err := positive("mass", massKg); err != nil {
		return 0, err
	}

	return 2 * constants.GravitationalConstant * massKg /
		(constants.SpeedOfLight * constants.SpeedOfLight), nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s (%v) must be a finite number", name, v)
	}
	if v <= 0 {
		return fmt.Errorf("%s (%v) must be greater than 0", name, v)
	}
	return nil
}
