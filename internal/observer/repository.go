package observer

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
	logger.Debug("Initializing observer repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const observerColumns = "id, username, email, display_name, avatar_url, role, created_at, updated_at"

func scanObserver(row interface{ Scan(dest ...interface{}) error }) (*Observer, error) {
	var o Observer
	err := row.Scan(
		&o.ID,
		&o.Username,
		&o.Email,
		&o.DisplayName,
		&o.AvatarURL,
		&o.Role,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) CreateObserver(ctx context.Context, username, email, displayName string, avatarURL *string, role Role) (*Observer, error) {
	logger := r.logger.With(
		"component", "observer_repository",
		"operation", "create_observer",
		"username", username,
	)
	logger.Debug("Creating observer")

	query := `
		INSERT INTO observers (username, email, display_name, avatar_url, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + observerColumns

	o, err := scanObserver(r.db.QueryRowContext(ctx, query, username, email, displayName, avatarURL, role))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return nil, errors.Conflictf("observer with this username or email already exists")
		}
		logger.Error("Failed to create observer", "error", err)
		return nil, errors.WrapInternal("failed to create observer", err)
	}

	logger.Info("Observer created", "observer_id", o.ID)
	return o, nil
}

func (r *Repository) GetObserverByID(ctx context.Context, id int) (*Observer, error) {
	logger := r.logger.With("component", "observer_repository", "operation", "get_observer", "observer_id", id)
	logger.Debug("Getting observer by ID")

	query := `SELECT ` + observerColumns + ` FROM observers WHERE id = $1`

	o, err := scanObserver(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("observer %d not found", id)
		}
		logger.Error("Failed to get observer", "error", err)
		return nil, errors.WrapInternal("failed to get observer", err)
	}

	return o, nil
}

func (r *Repository) FindObserverByEmail(ctx context.Context, email string) (*Observer, error) {
	logger := r.logger.With("component", "observer_repository", "operation", "find_by_email")
	logger.Debug("Finding observer by email")

	query := `SELECT ` + observerColumns + ` FROM observers WHERE email = $1`

	o, err := scanObserver(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("observer with email %s not found", email)
		}
		logger.Error("Failed to find observer by email", "error", err)
		return nil, errors.WrapInternal("failed to find observer by email", err)
	}

	return o, nil
}

func (r *Repository) GetObservers(ctx context.Context) ([]Observer, error) {
	logger := r.logger.With("component", "observer_repository", "operation", "get_observers")
	logger.Debug("Listing observers")

	query := `SELECT ` + observerColumns + ` FROM observers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query observers", "error", err)
		return nil, errors.WrapInternal("failed to query observers", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	observers := []Observer{}
	for rows.Next() {
		o, err := scanObserver(rows)
		if err != nil {
			logger.Error("Failed to scan observer row", "error", err)
			return nil, errors.WrapInternal("failed to scan observer", err)
		}
		observers = append(observers, *o)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating observers", err)
	}

	logger.Debug("Observers retrieved", "count", len(observers))
	return observers, nil
}

func (r *Repository) GetObserverCount(ctx context.Context) (int, error) {
	logger := r.logger.With("component", "observer_repository", "operation", "get_observer_count")
	logger.Debug("Getting observer count")

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM observers`).Scan(&count); err != nil {
		logger.Error("Failed to get observer count", "error", err)
		return 0, errors.WrapInternal("failed to get observer count", err)
	}

	return count, nil
}

func (r *Repository) UpdateObserverRole(ctx context.Context, id int, role Role) error {
	logger := r.logger.With("component", "observer_repository", "operation", "update_observer_role", "observer_id", id, "role", role)
	logger.Debug("Updating observer role")

	result, err := r.db.ExecContext(ctx, `UPDATE observers SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	if err != nil {
		logger.Error("Failed to update observer role", "error", err)
		return errors.WrapInternal("failed to update observer role", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.NotFoundf("observer %d not found", id)
	}

	logger.Info("Observer role updated", "observer_id", id)
	return nil
}
