package orbit

import (
	"context"
	"log/slog"

	"starsystem-server/internal/astro/luminosity"
	"starsystem-server/internal/astro/orbital"
	"starsystem-server/internal/body"
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
	CreateOrbit(ctx context.Context, universeID, primaryBodyID, orbitingBodyID int, semimajorAxisKm, eccentricity float64, tx *database.Tx) (*Orbit, error)
	GetOrbit(ctx context.Context, id int) (*Orbit, error)
	GetOrbitsByUniverseID(ctx context.Context, universeID int, tx *database.Tx) ([]Orbit, error)
	DeleteOrbit(ctx context.Context, id int) error
}

type Service struct {
	repo        Store
	bodyService *body.Service
	invalidator Invalidator
	logger      *slog.Logger
}

func NewService(repo Store, bodyService *body.Service, invalidator Invalidator, logger *slog.Logger) *Service {
	logger.Debug("Initializing orbit service")

	return &Service{
		repo:        repo,
		bodyService: bodyService,
		invalidator: invalidator,
		logger:      logger,
	}
}

// CreateOrbit validates and persists a new orbit. Both bodies must live in
// the same universe, the geometry must not put the bodies on a collision
// course, and the orbit must not close a cycle through the existing graph.
// With a nil tx the insert runs in its own transaction; callers that pass
// one commit it themselves and refresh caches afterwards.
func (s *Service) CreateOrbit(ctx context.Context, req CreateRequest, tx *database.Tx) (*Orbit, error) {
	logger := s.logger.With(
		"component", "orbit_service",
		"operation", "create_orbit",
		"primary_body_id", req.PrimaryBodyID,
		"orbiting_body_id", req.OrbitingBodyID,
	)
	logger.Debug("Creating orbit")

	if req.PrimaryBodyID == req.OrbitingBodyID {
		return nil, errors.Validation("a body cannot orbit itself")
	}

	primary, err := s.bodyService.GetBody(ctx, req.PrimaryBodyID, tx)
	if err != nil {
		return nil, err
	}
	orbiting, err := s.bodyService.GetBody(ctx, req.OrbitingBodyID, tx)
	if err != nil {
		return nil, err
	}

	if primary.UniverseID != orbiting.UniverseID {
		return nil, errors.Validationf("bodies %d and %d belong to different universes", primary.ID, orbiting.ID)
	}

	if err := CheckGeometry(primary, orbiting, req.SemimajorAxisKm, req.Eccentricity); err != nil {
		return nil, err
	}

	// The cycle invariant is enforced by the repository under a
	// per-universe lock, so concurrent creates cannot slip a loop past it.
	o, err := s.repo.CreateOrbit(ctx, primary.UniverseID, req.PrimaryBodyID, req.OrbitingBodyID, req.SemimajorAxisKm, req.Eccentricity, tx)
	if err != nil {
		return nil, err
	}

	if tx == nil && s.invalidator != nil {
		s.invalidator.InvalidateUniverse(ctx, o.UniverseID)
	}

	logger.Info("Orbit created", "orbit_id", o.ID, "universe_id", o.UniverseID)
	return o, nil
}

// CheckGeometry rejects orbits whose shape would make the orbiting body run
// into its primary: the semi-minor axis and the perihelion must both exceed
// the combined radii of the two bodies.
func CheckGeometry(primary, orbiting *body.Body, semimajorAxisKm, eccentricity float64) error {
	semiminor, err := orbital.SemiminorAxis(semimajorAxisKm, eccentricity)
	if err != nil {
		return errors.WrapValidation("invalid orbit geometry", err)
	}
	perihelion, err := orbital.Perihelion(semimajorAxisKm, eccentricity)
	if err != nil {
		return errors.WrapValidation("invalid orbit geometry", err)
	}

	combinedRadii := primary.RadiusKm + orbiting.RadiusKm
	if combinedRadii >= semiminor {
		return errors.Conflictf("the semi-minor axis is so small that %q could not pass %q without colliding", orbiting.Name, primary.Name)
	}
	if combinedRadii >= perihelion {
		return errors.Conflictf("the perihelion is so close that %q could not circle %q without colliding", orbiting.Name, primary.Name)
	}
	return nil
}

// WouldCycle reports whether adding an orbit of orbitingBodyID around
// primaryBodyID would close a cycle in the orbit graph. It walks the chain
// of primaries upward from the new primary.
func WouldCycle(existing []Orbit, primaryBodyID, orbitingBodyID int) bool {
	primaryOf := make(map[int]int, len(existing))
	for _, o := range existing {
		primaryOf[o.OrbitingBodyID] = o.PrimaryBodyID
	}

	for current := primaryBodyID; ; {
		if current == orbitingBodyID {
			return true
		}
		next, ok := primaryOf[current]
		if !ok {
			return false
		}
		current = next
	}
}

// ComputeElements derives the geometric and dynamic elements of an orbit.
// The equilibrium temperature is included when the primary body is a star
// with a known surface temperature.
func ComputeElements(o *Orbit, primary, orbiting *body.Body) (*Elements, error) {
	semiminor, err := orbital.SemiminorAxis(o.SemimajorAxisKm, o.Eccentricity)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute semi-minor axis", err)
	}
	perihelion, err := orbital.Perihelion(o.SemimajorAxisKm, o.Eccentricity)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute perihelion", err)
	}
	aphelion, err := orbital.Aphelion(o.SemimajorAxisKm, o.Eccentricity)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute aphelion", err)
	}
	periodSeconds, err := orbital.Period(o.SemimajorAxisKm, primary.MassKg, orbiting.MassKg)
	if err != nil {
		return nil, errors.WrapInternal("failed to compute orbital period", err)
	}

	elements := &Elements{
		SemiminorAxisKm: semiminor,
		PerihelionKm:    perihelion,
		AphelionKm:      aphelion,
		PeriodSeconds:   periodSeconds,
		PeriodDays:      periodSeconds / orbital.SecondsPerDay,
	}

	if primary.Kind == body.KindStar && primary.TemperatureK != nil {
		temp, err := luminosity.EquilibriumTemperature(o.SemimajorAxisKm, primary.RadiusKm, *primary.TemperatureK)
		if err != nil {
			return nil, errors.WrapInternal("failed to compute equilibrium temperature", err)
		}
		elements.EquilibriumTempK = &temp
	}

	return elements, nil
}

// GetOrbitWithElements loads an orbit and derives its elements.
func (s *Service) GetOrbitWithElements(ctx context.Context, id int) (*WithElements, error) {
	o, err := s.repo.GetOrbit(ctx, id)
	if err != nil {
		return nil, err
	}

	primary, err := s.bodyService.GetBody(ctx, o.PrimaryBodyID, nil)
	if err != nil {
		return nil, err
	}
	orbiting, err := s.bodyService.GetBody(ctx, o.OrbitingBodyID, nil)
	if err != nil {
		return nil, err
	}

	elements, err := ComputeElements(o, primary, orbiting)
	if err != nil {
		return nil, err
	}

	return &WithElements{Orbit: *o, Elements: *elements}, nil
}

func (s *Service) GetOrbitsByUniverseID(ctx context.Context, universeID int) ([]Orbit, error) {
	return s.repo.GetOrbitsByUniverseID(ctx, universeID, nil)
}

func (s *Service) DeleteOrbit(ctx context.Context, id int) error {
	o, err := s.repo.GetOrbit(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteOrbit(ctx, id); err != nil {
		return err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateUniverse(ctx, o.UniverseID)
	}
	return nil
}
