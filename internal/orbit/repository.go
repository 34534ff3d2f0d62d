package orbit

import (
	"context"
	"database/sql"
	"log/slog"

	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/errors"

	"github.com/lib/pq"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing orbit repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// Advisory lock class for orbit writes. CreateOrbit takes the lock per
// universe for the rest of its transaction, so two concurrent creates
// cannot both pass the cycle check and commit a loop the unique
// constraint on orbiting_body_id would never catch.
const orbitWriteLock = 7201

const orbitColumns = "id, universe_id, primary_body_id, orbiting_body_id, semimajor_axis_km, eccentricity, created_at, updated_at"

func scanOrbit(row interface{ Scan(dest ...interface{}) error }) (*Orbit, error) {
	var o Orbit
	err := row.Scan(
		&o.ID,
		&o.UniverseID,
		&o.PrimaryBodyID,
		&o.OrbitingBodyID,
		&o.SemimajorAxisKm,
		&o.Eccentricity,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrbit inserts an orbit after re-checking the cycle invariant under
// a per-universe advisory lock. With a nil tx it runs in its own
// transaction; otherwise the caller's transaction holds the lock until the
// caller commits.
func (r *Repository) CreateOrbit(ctx context.Context, universeID, primaryBodyID, orbitingBodyID int, semimajorAxisKm, eccentricity float64, tx *database.Tx) (*Orbit, error) {
	logger := r.logger.With(
		"component", "orbit_repository",
		"operation", "create_orbit",
		"universe_id", universeID,
		"primary_body_id", primaryBodyID,
		"orbiting_body_id", orbitingBodyID,
	)
	logger.Debug("Creating orbit")

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = r.db.BeginTxContext(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction", "error", err)
			return nil, errors.WrapInternal("failed to begin orbit transaction", err)
		}
		defer func() {
			_ = tx.Rollback()
		}()
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, orbitWriteLock, universeID); err != nil {
		logger.Error("Failed to lock universe for orbit write", "error", err)
		return nil, errors.WrapInternal("failed to lock universe for orbit write", err)
	}

	existing, err := r.GetOrbitsByUniverseID(ctx, universeID, tx)
	if err != nil {
		return nil, err
	}
	if WouldCycle(existing, primaryBodyID, orbitingBodyID) {
		return nil, errors.Conflictf("orbit of body %d around body %d would close a cycle", orbitingBodyID, primaryBodyID)
	}

	query := `
		INSERT INTO orbits (universe_id, primary_body_id, orbiting_body_id, semimajor_axis_km, eccentricity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orbitColumns

	o, err := scanOrbit(tx.QueryRowContext(ctx, query, universeID, primaryBodyID, orbitingBodyID, semimajorAxisKm, eccentricity))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code.Name() {
			case "unique_violation":
				return nil, errors.Conflictf("body %d already orbits another body", orbitingBodyID)
			case "foreign_key_violation":
				return nil, errors.NotFoundf("universe or body missing for orbit")
			}
		}
		logger.Error("Failed to create orbit", "error", err)
		return nil, errors.WrapInternal("failed to create orbit", err)
	}

	if ownTx {
		if err := tx.Commit(); err != nil {
			logger.Error("Failed to commit orbit transaction", "error", err)
			return nil, errors.WrapInternal("failed to commit orbit transaction", err)
		}
	}

	logger.Debug("Orbit created successfully", "orbit_id", o.ID)
	return o, nil
}

func (r *Repository) GetOrbit(ctx context.Context, id int) (*Orbit, error) {
	logger := r.logger.With("component", "orbit_repository", "operation", "get_orbit", "orbit_id", id)
	logger.Debug("Getting orbit by ID")

	query := `SELECT ` + orbitColumns + ` FROM orbits WHERE id = $1`

	o, err := scanOrbit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("orbit %d not found", id)
		}
		logger.Error("Failed to get orbit", "error", err)
		return nil, errors.WrapInternal("failed to get orbit", err)
	}

	return o, nil
}

func (r *Repository) GetOrbitsByUniverseID(ctx context.Context, universeID int, tx *database.Tx) ([]Orbit, error) {
	logger := r.logger.With("component", "orbit_repository", "operation", "get_orbits_by_universe", "universe_id", universeID)
	logger.Debug("Getting orbits by universe ID")

	query := `SELECT ` + orbitColumns + ` FROM orbits WHERE universe_id = $1 ORDER BY semimajor_axis_km`

	rows, err := r.getExecutor(tx).QueryContext(ctx, query, universeID)
	if err != nil {
		logger.Error("Failed to query orbits", "error", err)
		return nil, errors.WrapInternal("failed to query orbits", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	orbits := []Orbit{}
	for rows.Next() {
		o, err := scanOrbit(rows)
		if err != nil {
			logger.Error("Failed to scan orbit row", "error", err)
			return nil, errors.WrapInternal("failed to scan orbit", err)
		}
		orbits = append(orbits, *o)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating orbits", err)
	}

	logger.Debug("Orbits retrieved", "count", len(orbits))
	return orbits, nil
}

func (r *Repository) DeleteOrbit(ctx context.Context, id int) error {
	logger := r.logger.With("component", "orbit_repository", "operation", "delete_orbit", "orbit_id", id)
	logger.Debug("Deleting orbit")

	result, err := r.db.ExecContext(ctx, `DELETE FROM orbits WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete orbit", "error", err)
		return errors.WrapInternal("failed to delete orbit", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.NotFoundf("orbit %d not found", id)
	}

	logger.Info("Orbit deleted", "orbit_id", id)
	return nil
}
