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

// TransitService - переходы поездки
type TransitService interface {
	Begin(ctx context.Context, userID uuid.UUID, req *dto.BeginTransitRequest) (*dto.TransitResponse, error)
	Complete(ctx context.Context, userID uuid.UUID, req *dto.CompleteTransitRequest) (*dto.TransitResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, req *dto.CancelTransitRequest) (*dto.TransitResponse, error)
}

// TransitHandler - обработчик жизненного цикла поездки
type TransitHandler struct {
	transits TransitService
	logger   *zap.Logger
}

// NewTransitHandler - создание нового TransitHandler
func NewTransitHandler(transits TransitService, logger *zap.Logger) *TransitHandler {
	return &TransitHandler{
		transits: transits,
		logger:   logger,
	}
}

// Begin godoc
// @Summary Начало поездки
// @Description Привязывает коляску и переводит поездку в in_progress
// @Tags Transits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.BeginTransitRequest true "Поездка и коляска"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/navigation/transits/begin [post]
func (h *TransitHandler) Begin(c *fiber.Ctx) error {
	var req dto.BeginTransitRequest
	return h.handle(c, &req, func(ctx context.Context, userID uuid.UUID) (*dto.TransitResponse, error) {
		return h.transits.Begin(ctx, userID, &req)
	})
}

// Complete godoc
// @Summary Завершение поездки
// @Description Сохраняет расстояние и длительность, считает среднюю скорость
// @Tags Transits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.CompleteTransitRequest true "Итоги поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/navigation/transits/complete [post]
func (h *TransitHandler) Complete(c *fiber.Ctx) error {
	var req dto.CompleteTransitRequest
	return h.handle(c, &req, func(ctx context.Context, userID uuid.UUID) (*dto.TransitResponse, error) {
		return h.transits.Complete(ctx, userID, &req)
	})
}

// Cancel godoc
// @Summary Отмена поездки
// @Description Отменяет поездку; если переданы distance и duration, поездка завершается
// @Tags Transits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID пользователя"
// @Param request body dto.CancelTransitRequest true "Поездка и необязательные итоги"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/navigation/transits/cancel [post]
func (h *TransitHandler) Cancel(c *fiber.Ctx) error {
	var req dto.CancelTransitRequest
	return h.handle(c, &req, func(ctx context.Context, userID uuid.UUID) (*dto.TransitResponse, error) {
		return h.transits.Cancel(ctx, userID, &req)
	})
}

func (h *TransitHandler) handle(
	c *fiber.Ctx,
	req interface{},
	call func(ctx context.Context, userID uuid.UUID) (*dto.TransitResponse, error),
) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	if err := parseAndValidate(c, req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := call(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
