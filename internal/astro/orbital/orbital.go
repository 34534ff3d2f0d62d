// Package orbital implements the geometry of elliptical orbits and Kepler's
// third law. Orbits are described by their semi-major axis (kilometers) and
// eccentricity (0 <= e < 1).
package orbital

import (
	"fmt"
	"math"

	"starsystem-server/internal/astro/constants"
)

// SecondsPerDay converts orbital periods to days.
const SecondsPerDay = 86400.0

// SemiminorAxis returns the semi-minor axis of an ellipse from its
// semi-major axis and eccentricity: b^2 = a^2 (1 - e^2).
func SemiminorAxis(semimajorAxisKm, eccentricity float64) (float64, error) {
	if err := validateEllipse(semimajorAxisKm, eccentricity); err != nil {
		return 0, err
	}
	return semimajorAxisKm * math.Sqrt(1-eccentricity*eccentricity), nil
}

// Perihelion returns the closest approach of an elliptical orbit:
// Rp = a (1 - e).
func Perihelion(semimajorAxisKm, eccentricity float64) (float64, error) {
	if err := validateEllipse(semimajorAxisKm, eccentricity); err != nil {
		return 0, err
	}
	return semimajorAxisKm * (1 - eccentricity), nil
}

// Aphelion returns the furthest point of an elliptical orbit:
// Ra = a (1 + e).
func Aphelion(semimajorAxisKm, eccentricity float64) (float64, error) {
	if err := validateEllipse(semimajorAxisKm, eccentricity); err != nil {
		return 0, err
	}
	return semimajorAxisKm * (1 + eccentricity), nil
}

// Period returns the orbital period in seconds for an elliptical two-body
// orbit, per Kepler's third law: T^2 = 4 pi^2 a^3 / G (M1 + M2).
// Semi-major axis in kilometers, masses in kilograms.
func Period(semimajorAxisKm, primaryMassKg, orbitingMassKg float64) (float64, error) {
	if err := positive("semimajor_axis", semimajorAxisKm); err != nil {
		return 0, err
	}
	if err := positive("primary_body_mass", primaryMassKg); err != nil {
		return 0, err
	}
	if err := positive("orbiting_body_mass", orbitingMassKg); err != nil {
		return 0, err
	}

	aM := semimajorAxisKm * constants.MetersPerKilometer
	return math.Sqrt(4 * math.Pi * math.Pi * aM * aM * aM /
		(constants.GravitationalConstant * (primaryMassKg + orbitingMassKg))), nil
}

func validateEllipse(semimajorAxisKm, eccentricity float64) error {
	if err := positive("semimajor_axis", semimajorAxisKm); err != nil {
		return err
	}
	if math.IsNaN(eccentricity) || eccentricity < 0 || eccentricity >= 1 {
		return fmt.Errorf("eccentricity (%v) must satisfy 0 <= e < 1", eccentricity)
	}
	return nil
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
