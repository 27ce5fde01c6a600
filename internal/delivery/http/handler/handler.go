package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/validator"
)

// parseAndValidate разбирает JSON тело и проверяет теги validate.
// Нечисловые координаты маркера отдаются как INVALID_COORDINATES, прочие ошибки тела как VALIDATION_ERROR.
func parseAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && stderrors.Is(appErr, errors.ErrInvalidCoordinates) {
			return appErr
		}
		return errors.ErrValidation.WithMessage("Invalid request body")
	}
	return validator.Validate(req)
}
