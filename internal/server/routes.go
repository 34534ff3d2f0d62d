package server

import (
	"log/slog"
	"net/http"

	"starsystem-server/internal/auth"
	authHandlers "starsystem-server/internal/auth/handlers"
	"starsystem-server/internal/body"
	bodyHandlers "starsystem-server/internal/body/handlers"
	"starsystem-server/internal/catalog"
	catalogHandlers "starsystem-server/internal/catalog/handlers"
	"starsystem-server/internal/middleware"
	"starsystem-server/internal/observer"
	observerHandlers "starsystem-server/internal/observer/handlers"
	"starsystem-server/internal/orbit"
	orbitHandlers "starsystem-server/internal/orbit/handlers"
	serverHandlers "starsystem-server/internal/server/handlers"
	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/universe"
	universeHandlers "starsystem-server/internal/universe/handlers"
)

type Routes struct {
	db              *database.DB
	observerService *observer.Service
	authService     *auth.Service
	universeService *universe.Service
	bodyService     *body.Service
	orbitService    *orbit.Service
	catalog         *catalog.Catalog
	oauthConfig     *auth.OAuthConfig
	logger          *slog.Logger
}

func NewRoutes(
	db *database.DB,
	observerService *observer.Service,
	authService *auth.Service,
	universeService *universe.Service,
	bodyService *body.Service,
	orbitService *orbit.Service,
	cat *catalog.Catalog,
	oauthConfig *auth.OAuthConfig,
	logger *slog.Logger,
) *Routes {
	return &Routes{
		db:              db,
		observerService: observerService,
		authService:     authService,
		universeService: universeService,
		bodyService:     bodyService,
		orbitService:    orbitService,
		catalog:         cat,
		oauthConfig:     oauthConfig,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	catalogHandler := catalogHandlers.NewCatalogHandler(r.catalog)
	observersHandler := observerHandlers.NewObserversHandler(r.observerService)
	meHandler := observerHandlers.NewMeHandler()
	logoutHandler := authHandlers.NewLogoutHandler()

	universeHandler := universeHandlers.NewUniverseHandler(r.universeService)
	bodyHandler := bodyHandlers.NewBodyHandler(r.bodyService)
	orbitHandler := orbitHandlers.NewOrbitHandler(r.orbitService)

	googleAuthHandler := authHandlers.NewOAuthHandler(
		r.oauthConfig.GoogleProvider,
		r.observerService,
		r.authService,
		r.oauthConfig.GoogleConfigured,
	)
	githubAuthHandler := authHandlers.NewOAuthHandler(
		r.oauthConfig.GitHubProvider,
		r.observerService,
		r.authService,
		r.oauthConfig.GitHubConfigured,
	)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/catalog", catalogHandler)
	mux.Handle("/api/observers", observersHandler)

	mux.HandleFunc("/api/universes", universeHandler.Collection)
	mux.HandleFunc("/api/universes/{id}", universeHandler.GetByID)
	mux.HandleFunc("/api/universes/{id}/tree", universeHandler.GetTree)
	mux.HandleFunc("/api/universes/{id}/stats", universeHandler.GetStats)
	mux.HandleFunc("/api/universes/{id}/untethered", universeHandler.GetUntethered)
	mux.HandleFunc("/api/universes/{id}/bodies", universeHandler.GetBodies)
	mux.HandleFunc("/api/universes/{id}/orbits", universeHandler.GetOrbits)

	mux.HandleFunc("/api/bodies", bodyHandler.Create)
	mux.HandleFunc("/api/bodies/{id}", bodyHandler.GetByID)
	mux.HandleFunc("/api/bodies/{id}/stats", bodyHandler.GetStats)
	mux.HandleFunc("/api/bodies/{id}/weight", bodyHandler.GetSurfaceWeight)

	mux.HandleFunc("/api/orbits", orbitHandler.Create)
	mux.HandleFunc("/api/orbits/{id}", orbitHandler.GetByID)

	// Protected endpoints (authenticated users)
	mux.Handle("/api/observers/me", middleware.JWTMiddleware(meHandler))

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("/api/universes/seed-sol", middleware.RequireAdmin(http.HandlerFunc(universeHandler.SeedSol)))

	// OAuth endpoints
	mux.HandleFunc("/auth/google", googleAuthHandler.HandleAuth)
	mux.HandleFunc("/auth/google/callback", googleAuthHandler.HandleCallback)
	mux.HandleFunc("/auth/github", githubAuthHandler.HandleAuth)
	mux.HandleFunc("/auth/github/callback", githubAuthHandler.HandleCallback)
	mux.Handle("/auth/logout", logoutHandler)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/catalog", "/api/observers", "/api/universes", "/api/bodies", "/api/orbits"},
		"protected_endpoints", []string{"/api/observers/me"},
		"admin_endpoints", []string{"/api/universes/seed-sol"},
		"auth_endpoints", []string{"/auth/google", "/auth/github", "/auth/logout"},
	)

	return mux
}
