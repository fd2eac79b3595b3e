// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"mynote/internal/mynote/adapters/http/handlers"
	"mynote/internal/mynote/adapters/http/middleware"
	"mynote/internal/mynote/ports/api"
	svc "mynote/internal/mynote/ports/services"
	ports "mynote/internal/mynote/ports/session"
)

// Dependencies - зависимости HTTP слоя.
type Dependencies struct {
	Auth     api.AuthUseCase
	Notes    api.NoteUseCase
	Sessions ports.Store
	Signer   svc.CookieSigner
	Session  middleware.SessionOptions
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	h := handlers.NewHandler(deps.Auth, deps.Notes)

	// Middleware для всех запросов. Сессия сохраняется и при панике обработчика.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewSessionMiddleware(deps.Sessions, deps.Signer, deps.Session))
	app.Use(middleware.NewRecoveryMiddleware())

	// В fiber v3 обработчик маршрута идет первым, а промежуточные выполняются до него.
	app.Get(handlers.PathHome, h.Index, middleware.RequireLogin)

	app.Get(handlers.PathRegister, h.RegisterForm, middleware.RequireNotLogin)
	app.Post(handlers.PathRegister, h.Register)

	app.Get(handlers.PathLogin, h.LoginForm, middleware.RequireNotLogin)
	app.Post(handlers.PathLogin, h.Login)

	app.Get(handlers.PathQuit, h.Quit, middleware.RequireLogin)

	app.Get(handlers.PathPost, h.PostForm, middleware.RequireLogin)
	app.Post(handlers.PathPost, h.Post, middleware.RequireLogin)

	app.Get(handlers.PathDetail, h.Detail, middleware.RequireLogin)

	// Обработчик для несуществующих маршрутов.
	app.Use(h.NotFound)
}
