package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mynote/internal/mynote/domain/session"
	"mynote/pkg/logger"
)

// Сообщения охранников маршрутов.
const (
	FlashNotLoggedIn     = "not logged in"
	FlashAlreadyLoggedIn = "already logged in, log out first"

	PathLogin = "/login"
	PathHome  = "/"
)

// RequireLogin пропускает запрос только при наличии пользователя в сессии.
func RequireLogin(c fiber.Ctx) error {
	sess := SessionFrom(c)
	if sess != nil && sess.Authenticated() {
		return c.Next()
	}

	requestCtx := RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, "login required", zap.String("path", c.Path()))

	if sess != nil {
		session.SetFlash(sess, session.FlashInfo, FlashNotLoggedIn)
	}
	return c.Redirect().Status(fiber.StatusFound).To(PathLogin)
}

// RequireNotLogin пропускает запрос только при отсутствии пользователя в сессии.
func RequireNotLogin(c fiber.Ctx) error {
	sess := SessionFrom(c)
	if sess == nil || !sess.Authenticated() {
		return c.Next()
	}

	session.SetFlash(sess, session.FlashInfo, FlashAlreadyLoggedIn)
	return c.Redirect().Status(fiber.StatusFound).To(PathHome)
}
