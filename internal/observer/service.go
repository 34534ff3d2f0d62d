package observer

import (
	"context"
	"log/slog"
	"strings"

	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/errors"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing observer service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetObserverByID(ctx context.Context, id int) (*Observer, error) {
	return s.repo.GetObserverByID(ctx, id)
}

func (s *Service) GetObservers(ctx context.Context) ([]Observer, error) {
	return s.repo.GetObservers(ctx)
}

func (s *Service) GetObserverCount(ctx context.Context) (int, error) {
	return s.repo.GetObserverCount(ctx)
}

// FindOrCreateObserverByOAuth resolves the account an OAuth login maps to,
// creating it on first sign-in. The configured admin email always ends up
// with the admin role, even for accounts created before it was configured.
func (s *Service) FindOrCreateObserverByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*Observer, error) {
	logger := s.logger.With(
		"component", "observer_service",
		"operation", "find_or_create_oauth",
		"provider", provider,
		"email", email,
	)
	logger.Debug("Finding or creating observer by OAuth")

	cfg := config.GlobalConfig
	isAdminEmail := cfg != nil && email == cfg.Admin.Email

	o, err := s.repo.FindObserverByEmail(ctx, email)
	if err != nil && errors.GetType(err) != errors.ErrorTypeNotFound {
		return nil, err
	}

	if o != nil {
		logger.Debug("Found existing observer by email", "observer_id", o.ID, "role", o.Role)
		if isAdminEmail && o.Role != RoleAdmin {
			logger.Info("Upgrading observer to admin role", "observer_id", o.ID)
			if err := s.repo.UpdateObserverRole(ctx, o.ID, RoleAdmin); err != nil {
				return nil, err
			}
			o.Role = RoleAdmin
		}
		return o, nil
	}

	username := usernameFromEmail(email)
	role := RoleObserver

	if isAdminEmail {
		username = cfg.Admin.Username
		displayName = cfg.Admin.DisplayName
		role = RoleAdmin
		logger.Info("Creating admin observer via OAuth")
	}

	o, err = s.repo.CreateObserver(ctx, username, email, displayName, avatarURL, role)
	if err != nil {
		return nil, err
	}

	logger.Info("Observer created via OAuth",
		"observer_id", o.ID,
		"username", o.Username,
		"role", o.Role,
		"provider", provider,
	)
	return o, nil
}

func usernameFromEmail(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return "observer"
}
