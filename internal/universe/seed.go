package universe

import (
	"context"

	"starsystem-server/internal/body"
	"starsystem-server/internal/catalog"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/errors"
)

// SeedFromCatalog creates a universe populated from the built-in fact
// sheets: every catalog body, and an orbit for every entry that names a
// primary. The whole seed runs in one transaction, so a failure part way
// through leaves nothing behind and the seed can be retried. The universe
// name and description come from the seed configuration, so reseeding
// without cleanup fails on the name conflict.
func (s *Service) SeedFromCatalog(ctx context.Context) (*Universe, error) {
	seed := config.GlobalConfig.Seed
	logger := s.logger.With(
		"component", "universe_service",
		"operation", "seed_from_catalog",
		"universe_name", seed.UniverseName,
	)
	logger.Info("Seeding universe from built-in fact sheets")

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.db.BeginTxContext(ctx)
	if err != nil {
		logger.Error("Failed to begin seed transaction", "error", err)
		return nil, errors.WrapInternal("failed to begin seed transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	u, err := s.repo.CreateUniverse(ctx, seed.UniverseName, seed.UniverseDescription, tx)
	if err != nil {
		return nil, err
	}

	bodyIDs := make(map[string]int, len(cat.All()))
	for _, entry := range cat.All() {
		var temperature *float64
		if entry.MeanTemperatureK > 0 {
			t := entry.MeanTemperatureK
			temperature = &t
		}

		b, err := s.bodyService.CreateBody(ctx, body.CreateRequest{
			UniverseID:   u.ID,
			Name:         entry.Name,
			Kind:         body.Kind(entry.Kind),
			MassKg:       entry.MassKg,
			RadiusKm:     entry.RadiusKm,
			TemperatureK: temperature,
		}, tx)
		if err != nil {
			return nil, err
		}
		bodyIDs[entry.Name] = b.ID
	}

	for _, entry := range cat.All() {
		if entry.Primary == "" {
			continue
		}

		_, err := s.orbitService.CreateOrbit(ctx, orbit.CreateRequest{
			PrimaryBodyID:   bodyIDs[entry.Primary],
			OrbitingBodyID:  bodyIDs[entry.Name],
			SemimajorAxisKm: entry.SemimajorAxisKm,
			Eccentricity:    entry.Eccentricity,
		}, tx)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Failed to commit seed transaction", "error", err)
		return nil, errors.WrapInternal("failed to commit seed transaction", err)
	}

	s.cache.InvalidateUniverse(ctx, u.ID)

	logger.Info("Universe seeded", "universe_id", u.ID, "bodies", len(bodyIDs))
	return u, nil
}
