package middleware

import (
	"github.com/gofiber/fiber/v3"

	"mynote/pkg/logger"
)

// NewRequestIDMiddleware связывает запрос с идентификатором.
// Идентификатор берется из заголовка X-Request-ID или генерируется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		c.Locals(LocalsRequestContext, logger.NewRequestIDContext(c.Context(), requestID))
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}
