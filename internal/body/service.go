package body

import (
	"context"
	"log/slog"

	"starsystem-server/internal/astro/constants"
	"starsystem-server/internal/astro/geometry"
	"starsystem-server/internal/astro/gravity"
	"starsystem-server/internal/astro/luminosity"
	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/errors"
)

// Invalidator drops cached per-universe results after a mutation.
type Invalidator interface {
	InvalidateUniverse(ctx context.Context, universeID int)
}

// Store is the persistence surface the service needs. *Repository
// implements it.
type Store interface {
	CreateBody(ctx context.Context, universeID int, name string, kind Kind, massKg, radiusKm float64, temperatureK *float64, tx *database.Tx) (*Body, error)
	GetBody(ctx context.Context, id int, tx *database.Tx) (*Body, error)
	GetBodiesByUniverseID(ctx context.Context, universeID int) ([]Body, error)
	DeleteBody(ctx context.Context, id int) error
}

type Service struct {
	repo        Store
	invalidator Invalidator
	logger      *slog.Logger
}

func NewService(repo Store, invalidator Invalidator, logger *slog.Logger) *Service {
	logger.Debug("Initializing body service")

	return &Service{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// CreateBody validates and persists a new celestial body. Black holes carry
// no caller-supplied radius; their event horizon is derived from mass.
// Callers that pass a transaction commit it themselves and refresh caches
// afterwards.
func (s *Service) CreateBody(ctx context.Context, req CreateRequest, tx *database.Tx) (*Body, error) {
	logger := s.logger.With(
		"component", "body_service",
		"operation", "create_body",
		"universe_id", req.UniverseID,
		"kind", req.Kind,
	)
	logger.Debug("Creating celestial body")

	if req.Name == "" {
		return nil, errors.Validation("name is required")
	}
	if !req.Kind.IsValid() {
		return nil, errors.Validationf("unknown body kind %q", req.Kind)
	}
	if req.MassKg <= 0 {
		return nil, errors.Validationf("mass_kg (%v) must be greater than 0", req.MassKg)
	}

	radiusKm := req.RadiusKm
	if req.Kind == KindBlackHole {
		if req.RadiusKm != 0 {
			return nil, errors.Validation("radius_km is derived from mass for black holes and must be omitted")
		}
		horizonM, err := gravity.SchwarzschildRadius(req.MassKg)
		if err != nil {
			return nil, errors.WrapValidation("invalid black hole mass", err)
		}
		radiusKm = horizonM / constants.MetersPerKilometer
	} else if req.RadiusKm <= 0 {
		return nil, errors.Validationf("radius_km (%v) must be greater than 0", req.RadiusKm)
	}

	if req.Kind == KindStar {
		if req.TemperatureK == nil || *req.TemperatureK <= 0 {
			return nil, errors.Validation("stars require temperature_k greater than 0")
		}
	} else if req.TemperatureK != nil && *req.TemperatureK <= 0 {
		return nil, errors.Validationf("temperature_k (%v) must be greater than 0", *req.TemperatureK)
	}

	b, err := s.repo.CreateBody(ctx, req.UniverseID, req.Name, req.Kind, req.MassKg, radiusKm, req.TemperatureK, tx)
	if err != nil {
		return nil, err
	}

	if tx == nil && s.invalidator != nil {
		s.invalidator.InvalidateUniverse(ctx, b.UniverseID)
	}

	logger.Info("Body created", "body_id", b.ID, "name", b.Name)
	return b, nil
}

// GetBody loads a body, through tx when the caller is mid-transaction so
// that rows it inserted itself are visible.
func (s *Service) GetBody(ctx context.Context, id int, tx *database.Tx) (*Body, error) {
	return s.repo.GetBody(ctx, id, tx)
}

func (s *Service) GetBodiesByUniverseID(ctx context.Context, universeID int) ([]Body, error) {
	return s.repo.GetBodiesByUniverseID(ctx, universeID)
}

func (s *Service) DeleteBody(ctx context.Context, id int) error {
	b, err := s.repo.GetBody(ctx, id, nil)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteBody(ctx, id); err != nil {
		return err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateUniverse(ctx, b.UniverseID)
	}
	return nil
}

// ComputeStats derives volume, density and surface gravity for a body, plus
// black-body luminosity when a temperature is known and the event horizon
// for black holes.
func (s *Service) ComputeStats(b *Body) (*Stats, error) {
	volume, err := geometry.SphereVolume(b.RadiusKm)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute volume", err)
	}

	density, err := geometry.Density(b.MassKg, volume)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute density", err)
	}

	accel, err := gravity.Acceleration(b.MassKg, b.RadiusKm)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute gravitational acceleration", err)
	}

	stats := &Stats{
		VolumeKm3:   volume,
		DensityKgM3: density,
		GravityMS2:  accel,
	}

	if b.TemperatureK != nil {
		lum, err := luminosity.StefanBoltzmann(b.RadiusKm, *b.TemperatureK)
		if err != nil {
			return nil, errors.WrapInternal("failed to compute luminosity", err)
		}
		stats.LuminosityWatts = &lum
	}

	if b.Kind == KindBlackHole {
		horizonM, err := gravity.SchwarzschildRadius(b.MassKg)
		if err != nil {
			return nil, errors.WrapInternal("failed to compute event horizon", err)
		}
		horizonKm := horizonM / constants.MetersPerKilometer
		stats.EventHorizonKm = &horizonKm
	}

	return stats, nil
}

// SurfaceWeight estimates the weight of an object resting on the surface of
// a planetary body. Gravity is assumed to be the only force acting on it.
func (s *Service) SurfaceWeight(ctx context.Context, id int, objectMassKg float64) (*SurfaceWeight, error) {
	b, err := s.repo.GetBody(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if b.Kind != KindPlanet && b.Kind != KindMoon {
		return nil, errors.Validationf("surface weight is only defined for planets and moons, not %s", b.Kind)
	}
	if objectMassKg <= 0 {
		return nil, errors.Validationf("object mass (%v) must be greater than 0", objectMassKg)
	}

	newtons, err := gravity.Force(b.MassKg, objectMassKg, b.RadiusKm)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute surface force", err)
	}

	accel, err := gravity.Acceleration(b.MassKg, b.RadiusKm)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute gravitational acceleration", err)
	}

	kilograms, err := geometry.WeightInKilograms(newtons, accel)
	if err != nil {
		return nil, errors.WrapInternal("failed to convert weight", err)
	}

	return &SurfaceWeight{
		BodyID:          b.ID,
		ObjectMassKg:    objectMassKg,
		WeightNewtons:   newtons,
		WeightKilograms: kilograms,
	}, nil
}
