package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"starsystem-server/internal/auth"
	"starsystem-server/internal/body"
	"starsystem-server/internal/catalog"
	"starsystem-server/internal/middleware"
	"starsystem-server/internal/observer"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/server"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/logger"
	"starsystem-server/internal/shared/redis"
	"starsystem-server/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to initialize configuration:", err)
	}

	logger.Init()
	slog.Info("Starting star system server",
		"environment", config.GlobalConfig.Server.Environment,
		"port", config.GlobalConfig.Server.Port,
	)

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	redisClient, err := redis.Connect()
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("Failed to load built-in fact sheets:", err)
	}

	appLogger := slog.Default()

	treeCache := universe.NewTreeCache(redisClient, config.GlobalConfig.Redis.TreeTTL, appLogger)

	observerRepo := observer.NewRepository(db, appLogger)
	observerService := observer.NewService(observerRepo, appLogger)

	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, appLogger)

	bodyRepo := body.NewRepository(db, appLogger)
	bodyService := body.NewService(bodyRepo, treeCache, appLogger)

	orbitRepo := orbit.NewRepository(db, appLogger)
	orbitService := orbit.NewService(orbitRepo, bodyService, treeCache, appLogger)

	universeRepo := universe.NewRepository(db, appLogger)
	universeService := universe.NewService(universeRepo, bodyService, orbitService, treeCache, appLogger)

	oauthConfig := auth.InitOAuth()

	routes := server.NewRoutes(
		db,
		observerService,
		authService,
		universeService,
		bodyService,
		orbitService,
		cat,
		oauthConfig,
		appLogger,
	)
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Enabled:           config.GlobalConfig.RateLimit.Enabled,
		RequestsPerSecond: config.GlobalConfig.RateLimit.RequestsPerSecond,
		BurstSize:         config.GlobalConfig.RateLimit.BurstSize,
		TrustProxy:        config.GlobalConfig.RateLimit.TrustProxy,
	})
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	addr := fmt.Sprintf(":%s", config.GlobalConfig.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  config.GlobalConfig.Server.ReadTimeout,
		WriteTimeout: config.GlobalConfig.Server.WriteTimeout,
		IdleTimeout:  config.GlobalConfig.Server.IdleTimeout,
	}

	slog.Info("Server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
