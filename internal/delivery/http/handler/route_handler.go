package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/delivery/http/middleware"
	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/usecase/dto"
)

// RouteService - построение маршрута
type RouteService interface {
	GetRoute(ctx context.Context, userID uuid.UUID, req *dto.RouteRequest) (*domain.CanonicalRouteResponse, error)
}

// RouteHandler - обработчик запросов маршрута
type RouteHandler struct {
	routes RouteService
	logger *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routes RouteService, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routes: routes,
		logger: logger,
	}
}

// GetRoute godoc
// @Summary Маршрут для коляски
// @Description Находит или создает места отправления и назначения, открывает поездку и возвращает маршрут из внутреннего хранилища, OSM роутера или directions API
// @Tags Navigation
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.RouteRequest true "Координаты в формате lat,lng"
// @Success 200 {object} domain.CanonicalRouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/navigation/route [post]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	var req dto.RouteRequest
	if err := parseAndValidate(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routes.GetRoute(c.Context(), userID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// ответ маршрута сам несет success
	return c.JSON(result)
}
