package universe

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
	logger.Debug("Initializing universe repository")

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

const universeColumns = "id, name, description, created_at, updated_at"

func scanUniverse(row interface{ Scan(dest ...interface{}) error }) (*Universe, error) {
	var u Universe
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Description,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateUniverse(ctx context.Context, name, description string, tx *database.Tx) (*Universe, error) {
	logger := r.logger.With("component", "universe_repository", "operation", "create_universe", "name", name)
	logger.Debug("Creating universe")

	query := `
		INSERT INTO universes (name, description)
		VALUES ($1, $2)
		RETURNING ` + universeColumns

	u, err := scanUniverse(r.getExecutor(tx).QueryRowContext(ctx, query, name, description))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return nil, errors.Conflictf("universe %q already exists", name)
		}
		logger.Error("Failed to create universe", "error", err)
		return nil, errors.WrapInternal("failed to create universe", err)
	}

	logger.Debug("Universe created successfully", "universe_id", u.ID)
	return u, nil
}

func (r *Repository) GetUniverse(ctx context.Context, id int) (*Universe, error) {
	logger := r.logger.With("component", "universe_repository", "operation", "get_universe", "universe_id", id)
	logger.Debug("Getting universe by ID")

	query := `SELECT ` + universeColumns + ` FROM universes WHERE id = $1`

	u, err := scanUniverse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("universe %d not found", id)
		}
		logger.Error("Failed to get universe", "error", err)
		return nil, errors.WrapInternal("failed to get universe", err)
	}

	return u, nil
}

func (r *Repository) GetUniverses(ctx context.Context) ([]Universe, error) {
	logger := r.logger.With("component", "universe_repository", "operation", "get_universes")
	logger.Debug("Listing universes")

	query := `SELECT ` + universeColumns + ` FROM universes ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query universes", "error", err)
		return nil, errors.WrapInternal("failed to query universes", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	universes := []Universe{}
	for rows.Next() {
		u, err := scanUniverse(rows)
		if err != nil {
			logger.Error("Failed to scan universe row", "error", err)
			return nil, errors.WrapInternal("failed to scan universe", err)
		}
		universes = append(universes, *u)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating universes", err)
	}

	logger.Debug("Universes retrieved", "count", len(universes))
	return universes, nil
}

func (r *Repository) DeleteUniverse(ctx context.Context, id int) error {
	logger := r.logger.With("component", "universe_repository", "operation", "delete_universe", "universe_id", id)
	logger.Debug("Deleting universe")

	result, err := r.db.ExecContext(ctx, `DELETE FROM universes WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete universe", "error", err)
		return errors.WrapInternal("failed to delete universe", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.NotFoundf("universe %d not found", id)
	}

	logger.Info("Universe deleted", "universe_id", id)
	return nil
}
