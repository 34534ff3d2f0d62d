package orbit

import (
	"time"
)

// Orbit describes one celestial body circling another on an elliptical
// path. Semi-major axis in kilometers, eccentricity 0 <= e < 1.
type Orbit struct {
	ID              int       `json:"id"`
	UniverseID      int       `json:"universe_id"`
	PrimaryBodyID   int       `json:"primary_body_id"`
	OrbitingBodyID  int       `json:"orbiting_body_id"`
	SemimajorAxisKm float64   `json:"semimajor_axis_km"`
	Eccentricity    float64   `json:"eccentricity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Elements carries the quantities derived from an orbit and its two bodies.
// EquilibriumTempK is set when the primary body is a star with a known
// surface temperature.
type Elements struct {
	SemiminorAxisKm  float64  `json:"semiminor_axis_km"`
	PerihelionKm     float64  `json:"perihelion_km"`
	AphelionKm       float64  `json:"aphelion_km"`
	PeriodSeconds    float64  `json:"period_seconds"`
	PeriodDays       float64  `json:"period_days"`
	EquilibriumTempK *float64 `json:"equilibrium_temperature_k,omitempty"`
}

// WithElements is an orbit together with its derived elements.
type WithElements struct {
	Orbit
	Elements Elements `json:"elements"`
}

// CreateRequest is the JSON payload for creating an orbit.
type CreateRequest struct {
	PrimaryBodyID   int     `json:"primary_body_id"`
	OrbitingBodyID  int     `json:"orbiting_body_id"`
	SemimajorAxisKm float64 `json:"semimajor_axis_km"`
	Eccentricity    float64 `json:"eccentricity"`
}
