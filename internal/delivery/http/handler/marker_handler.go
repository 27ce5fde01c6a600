package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/delivery/http/middleware"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/usecase/dto"
)

// MarkerService - маркеры барьеров и удобств
type MarkerService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateMarkerRequest) (*dto.MarkerResponse, error)
	FindNearby(ctx context.Context, req *dto.MarkerSearchRequest) (*dto.MarkerResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, req *dto.MarkerStatusRequest) (*dto.MarkerStatusResponse, error)
}

// MarkerHandler - обработчик маркеров
type MarkerHandler struct {
	markers MarkerService
	logger  *zap.Logger
}

// NewMarkerHandler - создание нового MarkerHandler
func NewMarkerHandler(markers MarkerService, logger *zap.Logger) *MarkerHandler {
	return &MarkerHandler{
		markers: markers,
		logger:  logger,
	}
}

// Create godoc
// @Summary Новый маркер
// @Description Создает маркер в статусе detected и отмечает отчет у поездки
// @Tags Markers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.CreateMarkerRequest true "Маркер"
// @Success 201 {object} utils.SuccessResponse{data=dto.MarkerResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/navigation/markers [post]
func (h *MarkerHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	var req dto.CreateMarkerRequest
	if err := parseAndValidate(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.markers.Create(c.Context(), userID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// Search godoc
// @Summary Ближайший маркер
// @Description Ближайший активный маркер в радиусе 100 метров
// @Tags Markers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.MarkerSearchRequest true "Точка поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.MarkerResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/navigation/markers/search [post]
func (h *MarkerHandler) Search(c *fiber.Ctx) error {
	var req dto.MarkerSearchRequest
	if err := parseAndValidate(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.markers.FindNearby(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// UpdateStatus godoc
// @Summary Статус маркера
// @Description Подтверждает (persistent) или снимает (resolved) ближайший активный маркер в радиусе 50 метров
// @Tags Markers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.MarkerStatusRequest true "Точка и новый статус"
// @Success 200 {object} utils.SuccessResponse{data=dto.MarkerStatusResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/navigation/markers/status [post]
func (h *MarkerHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	var req dto.MarkerStatusRequest
	if err := parseAndValidate(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.markers.UpdateStatus(c.Context(), userID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
