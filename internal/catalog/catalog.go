// Package catalog ships the built-in celestial fact sheets. They back the
// seed-sol endpoint and give the astro packages realistic reference values
// to test against.
package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed data/solar_system.yaml
var solarSystemYAML []byte

// Entry is one fact sheet. Primary, SemimajorAxisKm and Eccentricity are set
// only for entries that orbit another catalog entry.
type Entry struct {
	Name             string  `yaml:"name" json:"name"`
	Kind             string  `yaml:"kind" json:"kind"`
	MassKg           float64 `yaml:"mass_kg" json:"mass_kg"`
	RadiusKm         float64 `yaml:"radius_km" json:"radius_km,omitempty"`
	MeanTemperatureK float64 `yaml:"mean_temperature_k" json:"mean_temperature_k,omitempty"`
	Primary          string  `yaml:"primary" json:"primary,omitempty"`
	SemimajorAxisKm  float64 `yaml:"semimajor_axis_km" json:"semimajor_axis_km,omitempty"`
	Eccentricity     float64 `yaml:"eccentricity" json:"eccentricity,omitempty"`
}

type Catalog struct {
	entries []Entry
	byName  map[string]Entry
}

type document struct {
	Bodies []Entry `yaml:"bodies"`
}

// Load parses the embedded fact sheets.
func Load() (*Catalog, error) {
	logger := slog.With("component", "catalog", "operation", "load")

	var doc document
	if err := yaml.Unmarshal(solarSystemYAML, &doc); err != nil {
		logger.Error("Failed to parse embedded fact sheets", "error", err)
		return nil, fmt.Errorf("failed to parse embedded fact sheets: %w", err)
	}

	byName := make(map[string]Entry, len(doc.Bodies))
	for _, entry := range doc.Bodies {
		if entry.Name == "" {
			return nil, fmt.Errorf("fact sheet with empty name")
		}
		if _, dup := byName[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate fact sheet: %s", entry.Name)
		}
		byName[entry.Name] = entry
	}

	logger.Debug("Fact sheets loaded", "count", len(doc.Bodies))

	return &Catalog{entries: doc.Bodies, byName: byName}, nil
}

// All returns every fact sheet in catalog order.
func (c *Catalog) All() []Entry {
	return c.entries
}

// Get looks up a fact sheet by name.
func (c *Catalog) Get(name string) (Entry, bool) {
	entry, ok := c.byName[name]
	return entry, ok
}
