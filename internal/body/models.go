package body

import (
	"time"
)

type Kind string

const (
	KindStar      Kind = "star"
	KindPlanet    Kind = "planet"
	KindMoon      Kind = "moon"
	KindBlackHole Kind = "black_hole"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindStar, KindPlanet, KindMoon, KindBlackHole:
		return true
	}
	return false
}

// Body is a celestial body belonging to a universe. Standard units:
// mass in kilograms, radius in kilometers, temperature in Kelvin.
// Black holes store their Schwarzschild radius as RadiusKm.
type Body struct {
	ID           int       `json:"id"`
	UniverseID   int       `json:"universe_id"`
	Name         string    `json:"name"`
	Kind         Kind      `json:"kind"`
	MassKg       float64   `json:"mass_kg"`
	RadiusKm     float64   `json:"radius_km"`
	TemperatureK *float64  `json:"temperature_k,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Stats carries the quantities derived from a body's mass and radius.
// LuminosityWatts is set for bodies with a surface temperature,
// EventHorizonKm for black holes.
type Stats struct {
	VolumeKm3       float64  `json:"volume_km3"`
	DensityKgM3     float64  `json:"density_kg_m3"`
	GravityMS2      float64  `json:"gravity_m_s2"`
	LuminosityWatts *float64 `json:"luminosity_watts,omitempty"`
	EventHorizonKm  *float64 `json:"event_horizon_km,omitempty"`
}

// SurfaceWeight is the weight of a reference object resting on a body's
// surface.
type SurfaceWeight struct {
	BodyID          int     `json:"body_id"`
	ObjectMassKg    float64 `json:"object_mass_kg"`
	WeightNewtons   float64 `json:"weight_newtons"`
	WeightKilograms float64 `json:"weight_kilograms"`
}

// CreateRequest is the JSON payload for creating a body.
type CreateRequest struct {
	UniverseID   int      `json:"universe_id"`
	Name         string   `json:"name"`
	Kind         Kind     `json:"kind"`
	MassKg       float64  `json:"mass_kg"`
	RadiusKm     float64  `json:"radius_km"`
	TemperatureK *float64 `json:"temperature_k"`
}

// DefaultObjectMassKg approximates the mass of an average person, used when
// a surface weight request names no object mass.
const DefaultObjectMassKg = 70.0
