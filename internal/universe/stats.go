package universe

import (
	"starsystem-server/internal/astro/luminosity"
	"starsystem-server/internal/body"
	"starsystem-server/internal/orbit"

	"gonum.org/v1/gonum/stat"
)

// ComputeStats aggregates a universe's contents: counts per body kind, mass
// statistics, and equilibrium temperature statistics over the bodies that
// orbit a star.
func ComputeStats(universeID int, bodies []body.Body, orbits []orbit.Orbit) *Stats {
	stats := &Stats{
		UniverseID:      universeID,
		BodyCount:       len(bodies),
		OrbitCount:      len(orbits),
		UntetheredCount: len(Untethered(bodies, orbits)),
		KindCounts:      make(map[string]int),
	}

	bodiesByID := make(map[int]body.Body, len(bodies))
	masses := make([]float64, 0, len(bodies))
	for _, b := range bodies {
		bodiesByID[b.ID] = b
		stats.KindCounts[string(b.Kind)]++
		stats.TotalMassKg += b.MassKg
		masses = append(masses, b.MassKg)
	}

	if len(masses) > 0 {
		stats.MeanMassKg = stat.Mean(masses, nil)
		stats.StdDevMassKg = stat.PopStdDev(masses, nil)
	}

	var temps []float64
	for _, o := range orbits {
		primary, ok := bodiesByID[o.PrimaryBodyID]
		if !ok || primary.Kind != body.KindStar || primary.TemperatureK == nil {
			continue
		}
		temp, err := luminosity.EquilibriumTemperature(o.SemimajorAxisKm, primary.RadiusKm, *primary.TemperatureK)
		if err != nil {
			continue
		}
		temps = append(temps, temp)
	}

	if len(temps) > 0 {
		mean := stat.Mean(temps, nil)
		stddev := stat.PopStdDev(temps, nil)
		stats.MeanEquilibriumTempK = &mean
		stats.StdDevEquilibriumTempK = &stddev
	}

	return stats
}
