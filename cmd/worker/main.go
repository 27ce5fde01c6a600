package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/navigation-microservice/internal/config"
	"github.com/navigation-microservice/internal/pkg/logger"
	"github.com/navigation-microservice/internal/repository/cache"
	"github.com/navigation-microservice/internal/repository/postgres"
	redisRepo "github.com/navigation-microservice/internal/repository/redis"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/worker"
	"github.com/navigation-microservice/internal/worker/transit"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transit Sweeper Worker")
	log.Info("Configuration loaded",
		zap.Duration("sweep_interval", cfg.Worker.SweepInterval),
		zap.Duration("stale_transit_after", cfg.Worker.StaleTransitAfter),
		zap.Bool("events_enabled", cfg.Events.Enabled))

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

	// 4. Events: Redis нужен только для публикации в stream
	events := usecase.NewNoopEventPublisher()
	if cfg.Events.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Events.MaxLen, log)
		events = usecase.NewStreamEventPublisher(streamRepo, cfg.Events.Stream, log)
	}

	// 5. Initialize repositories and use cases
	transitRepo := postgres.NewTransitRepository(db)
	wheelchairRepo := postgres.NewWheelchairRepository(db)
	transitUC := usecase.NewTransitUseCase(transitRepo, wheelchairRepo, events, log)

	// 6. Initialize workers
	sweeper := transit.NewSweeperWorker(
		transitUC,
		cfg.Worker.SweepInterval,
		cfg.Worker.StaleTransitAfter,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
	workerManager.Register(sweeper)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
