package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"starsystem-server/internal/auth"
	"starsystem-server/internal/auth/providers"
	"starsystem-server/internal/observer"
	"starsystem-server/internal/shared/cookies"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

type OAuthHandler struct {
	provider        providers.OAuthProvider
	observerService *observer.Service
	authService     *auth.Service
	isConfigured    bool
}

func NewOAuthHandler(provider providers.OAuthProvider, observerService *observer.Service, authService *auth.Service, isConfigured bool) *OAuthHandler {
	return &OAuthHandler{
		provider:        provider,
		observerService: observerService,
		authService:     authService,
		isConfigured:    isConfigured,
	}
}

func (h *OAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_oauth_init")

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	redirectURI := resolveRedirectURI(r.URL.Query().Get("redirect_uri"))

	state, err := auth.GenerateOAuthState(name, r.UserAgent(), redirectURI)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	authURL := h.provider.GetAuthURL(state)
	http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	errorParam := r.URL.Query().Get("error")

	logger := slog.With(
		"handler", name+"_oauth_callback",
		"user_agent", r.UserAgent(),
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	// Recover the redirect URI from state even in early-exit cases. Falls
	// back to the frontend URL if state is missing or invalid.
	redirectURI := ""
	if state != "" {
		if entry, err := auth.ValidateOAuthState(state, name, r.UserAgent()); err == nil {
			redirectURI = entry.RedirectURI
		}
	}

	if errorParam != "" {
		logger.Warn("OAuth authorization denied",
			"provider", name,
			"oauth_error", errorParam,
			"error_description", r.URL.Query().Get("error_description"))
		redirectWithError(w, r, redirectURI, "oauth_denied")
		return
	}

	if code == "" {
		logger.Error("OAuth callback missing authorization code", "provider", name)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	if redirectURI == "" {
		logger.Warn("OAuth state validation failed", "provider", name)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code",
			"error", err,
			"provider", name)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	logger.Debug("Fetching user information from provider API", "provider", name)
	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info",
			"error", err,
			"provider", name)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	userLogger := logger.With(
		"user_email", userInfo.Email,
		"provider_user_id", userInfo.ID,
		"user_name", userInfo.Name)

	if userInfo.Email == "" || !userInfo.EmailVerified {
		userLogger.Error("User missing verified email", "provider", name)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	userLogger.Info("Creating or finding observer account", "provider", name)

	existingObserverID, err := h.authService.FindObserverByAuthProvider(ctx, name, userInfo.ID)
	if err != nil && errors.GetType(err) != errors.ErrorTypeNotFound {
		userLogger.Error("Database error checking auth provider", "error", err)
		redirectWithError(w, r, redirectURI, "database_error")
		return
	}

	var o *observer.Observer
	if existingObserverID > 0 {
		userLogger.Debug("Found existing observer via OAuth provider")
		o, err = h.observerService.GetObserverByID(ctx, existingObserverID)
		if err != nil {
			userLogger.Error("Failed to get existing observer", "error", err)
			redirectWithError(w, r, redirectURI, "database_error")
			return
		}
	} else {
		userLogger.Debug("No existing OAuth link found, finding or creating observer by email")
		o, err = h.observerService.FindOrCreateObserverByOAuth(
			ctx,
			name,
			userInfo.Email,
			userInfo.Name,
			&userInfo.AvatarURL,
		)
		if err != nil {
			userLogger.Error("Failed to create observer", "error", err)
			redirectWithError(w, r, redirectURI, "database_error")
			return
		}

		userLogger.Debug("Linking OAuth provider to observer account")
		err = h.authService.CreateAuthProvider(ctx, o.ID, name, userInfo.ID, userInfo.Email)
		if err != nil {
			userLogger.Error("Failed to create auth provider link", "error", err)
			redirectWithError(w, r, redirectURI, "database_error")
			return
		}
	}

	observerLogger := userLogger.With("observer_id", o.ID)

	observerLogger.Debug("Generating JWT token for observer")
	jwtToken, err := auth.GenerateJWT(o.ID, o.Username, o.Email, o.Role.String())
	if err != nil {
		observerLogger.Error("Failed to generate JWT token", "error", err)
		redirectWithError(w, r, redirectURI, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, jwtToken)

	observerLogger.Info("OAuth authentication successful",
		"provider", name,
		"observer_username", o.Username,
		"observer_role", o.Role)

	successURL := fmt.Sprintf("%s/auth/callback?success=true", redirectURI)
	http.Redirect(w, r, successURL, http.StatusTemporaryRedirect)
}
