package universe

import (
	"time"

	"starsystem-server/internal/body"
)

// Universe is an isolated collection of celestial bodies and the orbits
// between them.
type Universe struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRequest is the JSON payload for creating a universe.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TreeNode is one body in a universe's orbit tree. Orbit fields are set on
// every node except the roots. Satellites are ordered by semi-major axis,
// innermost first.
type TreeNode struct {
	BodyID          int        `json:"body_id"`
	Name            string     `json:"name"`
	Kind            body.Kind  `json:"kind"`
	MassKg          float64    `json:"mass_kg"`
	RadiusKm        float64    `json:"radius_km"`
	OrbitID         *int       `json:"orbit_id,omitempty"`
	SemimajorAxisKm *float64   `json:"semimajor_axis_km,omitempty"`
	Eccentricity    *float64   `json:"eccentricity,omitempty"`
	Satellites      []TreeNode `json:"satellites"`
}

// Tree is the full orbit hierarchy of a universe. Roots are the bodies that
// orbit nothing.
type Tree struct {
	UniverseID int        `json:"universe_id"`
	Roots      []TreeNode `json:"roots"`
}

// Stats summarizes the contents of a universe.
type Stats struct {
	UniverseID      int            `json:"universe_id"`
	BodyCount       int            `json:"body_count"`
	OrbitCount      int            `json:"orbit_count"`
	UntetheredCount int            `json:"untethered_count"`
	KindCounts      map[string]int `json:"kind_counts"`
	TotalMassKg     float64        `json:"total_mass_kg"`
	MeanMassKg      float64        `json:"mean_mass_kg"`
	StdDevMassKg    float64        `json:"stddev_mass_kg"`

	// Equilibrium temperature statistics cover bodies that orbit a star.
	MeanEquilibriumTempK   *float64 `json:"mean_equilibrium_temperature_k,omitempty"`
	StdDevEquilibriumTempK *float64 `json:"stddev_equilibrium_temperature_k,omitempty"`
}
