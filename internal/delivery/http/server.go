package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/config"
	"github.com/navigation-microservice/internal/delivery/http/handler"
	"github.com/navigation-microservice/internal/delivery/http/middleware"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routeHandler   *handler.RouteHandler
	transitHandler *handler.TransitHandler
	markerHandler  *handler.MarkerHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	transitHandler *handler.TransitHandler,
	markerHandler *handler.MarkerHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Navigation Microservice",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		routeHandler:   routeHandler,
		transitHandler: transitHandler,
		markerHandler:  markerHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", s.healthHandler.Health)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)

	navigation := api.Group("/navigation", middleware.UserContext())
	navigation.Post("/route", s.routeHandler.GetRoute)

	// Transits
	navigation.Post("/transits/begin", s.transitHandler.Begin)
	navigation.Post("/transits/complete", s.transitHandler.Complete)
	navigation.Post("/transits/cancel", s.transitHandler.Cancel)

	// Markers
	navigation.Post("/markers", s.markerHandler.Create)
	navigation.Post("/markers/search", s.markerHandler.Search)
	navigation.Post("/markers/status", s.markerHandler.UpdateStatus)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber в формате {success: false, error: ...}
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		if fiberErr != nil {
			return utils.SendError(c, errors.New("HTTP_ERROR", fiberErr.Message, code))
		}
		return utils.SendError(c, err)
	}
}
