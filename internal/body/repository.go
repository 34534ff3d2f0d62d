package body

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
	logger.Debug("Initializing body repository")

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

const bodyColumns = "id, universe_id, name, kind, mass_kg, radius_km, temperature_k, created_at, updated_at"

func scanBody(row interface{ Scan(dest ...interface{}) error }) (*Body, error) {
	var b Body
	err := row.Scan(
		&b.ID,
		&b.UniverseID,
		&b.Name,
		&b.Kind,
		&b.MassKg,
		&b.RadiusKm,
		&b.TemperatureK,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) CreateBody(ctx context.Context, universeID int, name string, kind Kind, massKg, radiusKm float64, temperatureK *float64, tx *database.Tx) (*Body, error) {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "body_repository",
		"operation", "create_body",
		"universe_id", universeID,
		"name", name,
		"kind", kind,
	)
	logger.Debug("Creating celestial body")

	query := `
		INSERT INTO bodies (universe_id, name, kind, mass_kg, radius_km, temperature_k)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bodyColumns

	b, err := scanBody(exec.QueryRowContext(ctx, query, universeID, name, kind, massKg, radiusKm, temperatureK))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code.Name() {
			case "unique_violation":
				return nil, errors.Conflictf("a body named %q already exists in universe %d", name, universeID)
			case "foreign_key_violation":
				return nil, errors.NotFoundf("universe %d not found", universeID)
			}
		}
		logger.Error("Failed to create body", "error", err)
		return nil, errors.WrapInternal("failed to create body", err)
	}

	logger.Debug("Body created successfully", "body_id", b.ID)
	return b, nil
}

func (r *Repository) GetBody(ctx context.Context, id int, tx *database.Tx) (*Body, error) {
	logger := r.logger.With("component", "body_repository", "operation", "get_body", "body_id", id)
	logger.Debug("Getting body by ID")

	query := `SELECT ` + bodyColumns + ` FROM bodies WHERE id = $1`

	b, err := scanBody(r.getExecutor(tx).QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("body %d not found", id)
		}
		logger.Error("Failed to get body", "error", err)
		return nil, errors.WrapInternal("failed to get body", err)
	}

	return b, nil
}

func (r *Repository) GetBodiesByUniverseID(ctx context.Context, universeID int) ([]Body, error) {
	logger := r.logger.With("component", "body_repository", "operation", "get_bodies_by_universe", "universe_id", universeID)
	logger.Debug("Getting bodies by universe ID")

	query := `SELECT ` + bodyColumns + ` FROM bodies WHERE universe_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, universeID)
	if err != nil {
		logger.Error("Failed to query bodies", "error", err)
		return nil, errors.WrapInternal("failed to query bodies", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	bodies := []Body{}
	for rows.Next() {
		b, err := scanBody(rows)
		if err != nil {
			logger.Error("Failed to scan body row", "error", err)
			return nil, errors.WrapInternal("failed to scan body", err)
		}
		bodies = append(bodies, *b)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating bodies", err)
	}

	logger.Debug("Bodies retrieved", "count", len(bodies))
	return bodies, nil
}

func (r *Repository) DeleteBody(ctx context.Context, id int) error {
	logger := r.logger.With("component", "body_repository", "operation", "delete_body", "body_id", id)
	logger.Debug("Deleting body")

	result, err := r.db.ExecContext(ctx, `DELETE FROM bodies WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete body", "error", err)
		return errors.WrapInternal("failed to delete body", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.NotFoundf("body %d not found", id)
	}

	logger.Info("Body deleted", "body_id", id)
	return nil
}
