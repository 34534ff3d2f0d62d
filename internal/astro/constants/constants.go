// Package constants holds the physical constants used by the astro packages.
package constants

const (
	// SpeedOfLight is the speed of light in a vacuum, in meters per second.
	SpeedOfLight = 299792458.0

	// GravitationalConstant is Newton's constant G, in m^3 kg^-1 s^-2.
	GravitationalConstant = 6.673e-11

	// StefanBoltzmann is the Stefan-Boltzmann constant sigma, in W m^-2 K^-4.
	StefanBoltzmann = 5.67e-8

	// SolarMass is the mass of the Sun in kilograms.
	SolarMass = 1.989e30

	// AstronomicalUnit is the mean Earth-Sun distance in kilometers.
	AstronomicalUnit = 1.496e8

	// PoundsPerKilogram converts kilograms to pounds.
	PoundsPerKilogram = 2.20462

	// MetersPerKilometer converts the kilometer-based API units to SI.
	MetersPerKilometer = 1000.0
)
