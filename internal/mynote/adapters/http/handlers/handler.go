// Package handlers содержит HTTP обработчики страниц приложения.
package handlers

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v3"

	"mynote/internal/mynote/adapters/http/middleware"
	"mynote/internal/mynote/adapters/http/views"
	"mynote/internal/mynote/domain/session"
	"mynote/internal/mynote/ports/api"
)

// Пути страниц.
const (
	PathHome     = "/"
	PathRegister = "/register"
	PathLogin    = "/login"
	PathQuit     = "/quit"
	PathPost     = "/post"
	PathDetail   = "/detail/:id"
)

// Тексты flash-сообщений.
const (
	FlashInvalidUsername  = "username must be 3-20 letters, digits or underscores"
	FlashInvalidPassword  = "password must be at least 6 characters with a digit, a lowercase and an uppercase letter"
	FlashPasswordMismatch = "passwords do not match"
	FlashUsernameTaken    = "username already exists"
	FlashRegistered       = "registered successfully"
	FlashUserNotFound     = "user not found"
	FlashWrongPassword    = "wrong password"
	FlashLoggedIn         = "login success"
	FlashLoggedOut        = "logged out"
	FlashEmptyNoteField   = "title, tag and content are required"
	FlashUnknownError     = "unknown error"
)

// Handler обрабатывает запросы страниц.
type Handler struct {
	auth  api.AuthUseCase
	notes api.NoteUseCase
}

// NewHandler создает обработчик страниц.
func NewHandler(auth api.AuthUseCase, notes api.NoteUseCase) *Handler {
	return &Handler{auth: auth, notes: notes}
}

// page собирает общие данные страницы и забирает ожидающее flash-сообщение.
func page(c fiber.Ctx, title string) views.Page {
	p := views.Page{Title: title}
	if sess := middleware.SessionFrom(c); sess != nil {
		p.User = sess.User
		p.Flash = session.TakeFlash(sess)
	}
	return p
}

func render(c fiber.Ctx, status int, component templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Status(status)
	return component.Render(middleware.RequestContext(c), c.Response().BodyWriter())
}

// redirectWithFlash сохраняет сообщение в сессии и перенаправляет на path.
func redirectWithFlash(c fiber.Ctx, path string, kind session.FlashKind, message string) error {
	if sess := middleware.SessionFrom(c); sess != nil {
		session.SetFlash(sess, kind, message)
	}
	return redirect(c, path)
}

func redirect(c fiber.Ctx, path string) error {
	return c.Redirect().Status(fiber.StatusFound).To(path)
}

// NotFound отдает страницу 404.
func (h *Handler) NotFound(c fiber.Ctx) error {
	return render(c, fiber.StatusNotFound, views.NotFound(page(c, views.TitleNotFound)))
}
