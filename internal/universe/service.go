package universe

import (
	"context"
	"log/slog"

	"starsystem-server/internal/body"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/shared/errors"
)

type Service struct {
	repo         *Repository
	bodyService  *body.Service
	orbitService *orbit.Service
	cache        *TreeCache
	logger       *slog.Logger
}

func NewService(repo *Repository, bodyService *body.Service, orbitService *orbit.Service, cache *TreeCache, logger *slog.Logger) *Service {
	logger.Debug("Initializing universe service")

	return &Service{
		repo:         repo,
		bodyService:  bodyService,
		orbitService: orbitService,
		cache:        cache,
		logger:       logger,
	}
}

func (s *Service) CreateUniverse(ctx context.Context, req CreateRequest) (*Universe, error) {
	if req.Name == "" {
		return nil, errors.Validation("name is required")
	}
	return s.repo.CreateUniverse(ctx, req.Name, req.Description, nil)
}

func (s *Service) GetUniverse(ctx context.Context, id int) (*Universe, error) {
	return s.repo.GetUniverse(ctx, id)
}

func (s *Service) GetUniverses(ctx context.Context) ([]Universe, error) {
	return s.repo.GetUniverses(ctx)
}

func (s *Service) DeleteUniverse(ctx context.Context, id int) error {
	if err := s.repo.DeleteUniverse(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateUniverse(ctx, id)
	return nil
}

func (s *Service) GetBodies(ctx context.Context, id int) ([]body.Body, error) {
	if _, err := s.repo.GetUniverse(ctx, id); err != nil {
		return nil, err
	}
	return s.bodyService.GetBodiesByUniverseID(ctx, id)
}

func (s *Service) GetOrbits(ctx context.Context, id int) ([]orbit.Orbit, error) {
	if _, err := s.repo.GetUniverse(ctx, id); err != nil {
		return nil, err
	}
	return s.orbitService.GetOrbitsByUniverseID(ctx, id)
}

// GetTree returns the orbit hierarchy of a universe, served from the cache
// when a fresh copy is available.
func (s *Service) GetTree(ctx context.Context, id int) (*Tree, error) {
	if cached := s.cache.GetTree(ctx, id); cached != nil {
		s.logger.Debug("Serving tree from cache", "universe_id", id)
		return cached, nil
	}

	if _, err := s.repo.GetUniverse(ctx, id); err != nil {
		return nil, err
	}

	bodies, err := s.bodyService.GetBodiesByUniverseID(ctx, id)
	if err != nil {
		return nil, err
	}
	orbits, err := s.orbitService.GetOrbitsByUniverseID(ctx, id)
	if err != nil {
		return nil, err
	}

	tree := &Tree{UniverseID: id, Roots: BuildTree(bodies, orbits)}
	s.cache.SetTree(ctx, tree)
	return tree, nil
}

// GetStats aggregates counts and mass and temperature statistics for a
// universe.
func (s *Service) GetStats(ctx context.Context, id int) (*Stats, error) {
	if _, err := s.repo.GetUniverse(ctx, id); err != nil {
		return nil, err
	}

	bodies, err := s.bodyService.GetBodiesByUniverseID(ctx, id)
	if err != nil {
		return nil, err
	}
	orbits, err := s.orbitService.GetOrbitsByUniverseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ComputeStats(id, bodies, orbits), nil
}

// GetUntethered lists the bodies of a universe that take part in no orbit.
func (s *Service) GetUntethered(ctx context.Context, id int) ([]body.Body, error) {
	if _, err := s.repo.GetUniverse(ctx, id); err != nil {
		return nil, err
	}

	bodies, err := s.bodyService.GetBodiesByUniverseID(ctx, id)
	if err != nil {
		return nil, err
	}
	orbits, err := s.orbitService.GetOrbitsByUniverseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return Untethered(bodies, orbits), nil
}
