package auth

import (
	"context"
	"database/sql"

	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/errors"
)

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateAuthProvider(ctx context.Context, observerID int, provider, providerUserID, providerEmail string) error {
	query := `
		INSERT INTO observer_auth_providers (observer_id, provider, provider_user_id, provider_email)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, observerID, provider, providerUserID, providerEmail)
	if err != nil {
		return errors.WrapInternal("failed to create auth provider", err)
	}

	return nil
}

func (r *Repository) FindObserverByAuthProvider(ctx context.Context, provider, providerUserID string) (int, error) {
	query := `
		SELECT observer_id
		FROM observer_auth_providers
		WHERE provider = $1 AND provider_user_id = $2
	`

	var observerID int
	err := r.db.QueryRowContext(ctx, query, provider, providerUserID).Scan(&observerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, errors.NotFoundf("observer not found for auth provider: %s", provider)
		}
		return 0, errors.WrapInternal("failed to find observer by auth provider", err)
	}

	return observerID, nil
}
