// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"mynote/internal/mynote/domain/session"
)

// Ключи fiber.Locals.
const (
	LocalsRequestContext = "requestContext"
	LocalsSession        = "session"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// RequestContext возвращает контекст запроса с идентификатором запроса.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(LocalsRequestContext).(context.Context); ok {
		return ctx
	}
	return c.Context()
}

// SessionFrom возвращает сессию текущего запроса или nil.
func SessionFrom(c fiber.Ctx) *session.Session {
	sess, _ := c.Locals(LocalsSession).(*session.Session)
	return sess
}
