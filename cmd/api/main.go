package main

// @title Navigation Microservice API
// @version 1.0.0
// @description Микросервис навигации для пользователей инвалидных колясок. Строит маршруты между точками, ведет поездки (transits) и принимает метки препятствий и удобств на маршруте.
// @description
// @description Основные возможности:
// @description - Построение маршрута: внутреннее хранилище, затем OSM роутер, затем Google Directions
// @description - Жизненный цикл поездки: begin, complete, cancel
// @description - Метки барьеров и удобств с подтверждением и снятием

// @contact.name API Support
// @contact.email support@navigation-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/navigation-microservice/docs"
	"github.com/navigation-microservice/internal/config"
	httpDelivery "github.com/navigation-microservice/internal/delivery/http"
	"github.com/navigation-microservice/internal/delivery/http/handler"
	"github.com/navigation-microservice/internal/infrastructure/google"
	"github.com/navigation-microservice/internal/infrastructure/osmrouter"
	"github.com/navigation-microservice/internal/pkg/logger"
	"github.com/navigation-microservice/internal/repository/cache"
	"github.com/navigation-microservice/internal/repository/postgres"
	redisRepo "github.com/navigation-microservice/internal/repository/redis"
	"github.com/navigation-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Navigation Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	placeRepo := postgres.NewPlaceRepository(db)
	geoReferenceRepo := postgres.NewGeoReferenceRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	wheelchairRepo := postgres.NewWheelchairRepository(db)
	transitRepo := postgres.NewTransitRepository(db)
	markerRepo := postgres.NewMarkerRepository(db)

	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. External providers (за кэшем в Redis)
	googleClient := google.NewClient(&cfg.Google, log)
	if cfg.Google.APIKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY is empty, geocoding and directions requests will fail")
	}

	geocoder := cache.NewCachedGeocoder(googleClient, cacheRepo, cfg.Cache.GeocodeCacheTTL, log)
	directions := cache.NewCachedDirections(googleClient, cacheRepo, cfg.Cache.RouteCacheTTL, log)
	osmRouter := cache.NewCachedOSMRouter(
		osmrouter.NewClient(&cfg.OSMRouter, log),
		cacheRepo,
		cfg.Cache.RouteCacheTTL,
		log,
	)

	// 8. Event publisher
	events := usecase.NewNoopEventPublisher()
	if cfg.Events.Enabled {
		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Events.MaxLen, log)
		events = usecase.NewStreamEventPublisher(streamRepo, cfg.Events.Stream, log)
		log.Info("Navigation events enabled", zap.String("stream", cfg.Events.Stream))
	}

	// 9. Initialize Use Cases
	placeResolver := usecase.NewPlaceResolver(
		placeRepo,
		geoReferenceRepo,
		geocoder,
		cfg.Navigation.PlaceRadiusMeters,
		log,
	)

	routeChain := usecase.NewRouteProviderChain(
		routeRepo,
		osmRouter,
		directions,
		usecase.NewRouteNormalizer(),
		usecase.RouteChainTimeouts{
			Internal:   cfg.Navigation.InternalRouteTimeout,
			OSM:        cfg.OSMRouter.Timeout,
			Directions: cfg.Google.Timeout,
		},
		log,
	)

	navigationUC := usecase.NewNavigationUseCase(placeResolver, routeChain, transitRepo, log)
	transitUC := usecase.NewTransitUseCase(transitRepo, wheelchairRepo, events, log)
	markerUC := usecase.NewMarkerUseCase(markerRepo, transitRepo, events, log)

	log.Info("Use cases initialized")

	// 10. Initialize HTTP Handlers
	routeHandler := handler.NewRouteHandler(navigationUC, log)
	transitHandler := handler.NewTransitHandler(transitUC, log)
	markerHandler := handler.NewMarkerHandler(markerUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)

	log.Info("HTTP handlers initialized")

	// 11. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		transitHandler,
		markerHandler,
		healthHandler,
	)

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
