// Package luminosity implements black-body radiation estimates based on the
// Stefan-Boltzmann law.
package luminosity

import (
	"fmt"
	"math"

	"starsystem-server/internal/astro/constants"
)

// StefanBoltzmann returns the luminosity of a celestial body in Watts by
// treating it as a black-body radiator: L = 4 pi R^2 sigma T^4.
// Radius in kilometers, surface temperature in Kelvin.
func StefanBoltzmann(radiusKm, temperatureK float64) (float64, error) {
	if err := positive("radius", radiusKm); err != nil {
		return 0, err
	}
	if err := positive("temperature", temperatureK); err != nil {
		return 0, err
	}

	radiusM := radiusKm * constants.MetersPerKilometer
	return 4 * math.Pi * radiusM * radiusM *
		constants.StefanBoltzmann * math.Pow(temperatureK, 4), nil
}

// EquilibriumTemperature estimates the surface temperature of a planet in
// Kelvin from its orbital distance and the radius and surface temperature of
// its star: T = T_star * sqrt(R_star / 2d). The estimate assumes a
// zero-albedo black body in radiative equilibrium; for Earth it lands near
// 279 K against a measured mean of 288 K.
// Semi-major axis and stellar radius in kilometers, temperature in Kelvin.
func EquilibriumTemperature(semimajorAxisKm, solarRadiusKm, solarTempK float64) (float64, error) {
	if err := positive("semimajor_axis", semimajorAxisKm); err != nil {
		return 0, err
	}
	if err := positive("solar_radius", solarRadiusKm); err != nil {
		return 0, err
	}
	if err := positive("solar_temperature", solarTempK); err != nil {
		return 0, err
	}

	return solarTempK * math.Sqrt(solarRadiusKm/(2*semimajorAxisKm)), nil
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
