package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
)

// UserIDHeader - заголовок, в котором gateway передает id пользователя
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

// UserContext требует валидный X-User-ID и кладет его в locals
func UserContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(UserIDHeader))
		id, err := uuid.Parse(raw)
		if raw == "" || err != nil || id == uuid.Nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(userIDKey, id.String())
		return c.Next()
	}
}

// UserID возвращает id пользователя, выставленный UserContext
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(userIDKey).(string)
	if !ok {
		return uuid.Nil, errors.ErrUnauthorized
	}
	return uuid.Parse(raw)
}
