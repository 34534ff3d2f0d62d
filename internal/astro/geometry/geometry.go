// Package geometry holds the handful of shape and unit helpers shared by the
// body calculations.
package geometry

import (
	"fmt"
	"math"

	"starsystem-server/internal/astro/constants"
)

// SphereVolume returns the volume of a sphere in cubic kilometers for a
// radius in kilometers.
func SphereVolume(radiusKm float64) (float64, error) {
	if err := positive("radius", radiusKm); err != nil {
		return 0, err
	}
	return 4.0 / 3.0 * math.Pi * radiusKm * radiusKm * radiusKm, nil
}

// Density returns the density of a body in kg/m^3 from its mass in kilograms
// and volume in cubic kilometers.
func Density(massKg, volumeKm3 float64) (float64, error) {
	if err := positive("mass", massKg); err != nil {
		return 0, err
	}
	if err := positive("volume", volumeKm3); err != nil {
		return 0, err
	}

	km3InM3 := constants.MetersPerKilometer * constants.MetersPerKilometer * constants.MetersPerKilometer
	return massKg / (volumeKm3 * km3InM3), nil
}

// WeightInKilograms converts a weight in Newtons to kilograms given the
// local gravitational acceleration in m/s^2.
func WeightInKilograms(weightNewtons, gravitationalAcceleration float64) (float64, error) {
	if err := positive("weight_in_newtons", weightNewtons); err != nil {
		return 0, err
	}
	if err := positive("gravitational_acceleration", gravitationalAcceleration); err != nil {
		return 0, err
	}
	return weightNewtons / gravitationalAcceleration, nil
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
