package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mynote/internal/mynote/adapters/http/middleware"
	"mynote/internal/mynote/adapters/http/views"
	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/domain/session"
	"mynote/pkg/logger"
)

// RegisterForm отдает форму регистрации.
func (h *Handler) RegisterForm(c fiber.Ctx) error {
	return render(c, fiber.StatusOK, views.Register(page(c, views.TitleRegister)))
}

// Register регистрирует пользователя из полей формы.
func (h *Handler) Register(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)

	_, err := h.auth.Register(requestCtx,
		c.FormValue("username"),
		c.FormValue("password"),
		c.FormValue("passwordRepeat"),
	)
	if err != nil {
		if !isUserError(err) {
			logger.Log(requestCtx).Error(requestCtx, "registration failed", zap.Error(err))
		}
		return redirectWithFlash(c, PathRegister, session.FlashError, flashForError(err))
	}

	return redirectWithFlash(c, PathHome, session.FlashSuccess, FlashRegistered)
}

// LoginForm отдает форму входа.
func (h *Handler) LoginForm(c fiber.Ctx) error {
	return render(c, fiber.StatusOK, views.Login(page(c, views.TitleLogin)))
}

// Login проверяет учетные данные и сохраняет пользователя в сессии.
func (h *Handler) Login(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)

	user, err := h.auth.Login(requestCtx, c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if !isUserError(err) {
			logger.Log(requestCtx).Error(requestCtx, "login failed", zap.Error(err))
		}
		return redirectWithFlash(c, PathLogin, session.FlashError, flashForError(err))
	}

	if sess := middleware.SessionFrom(c); sess != nil {
		sess.Login(user)
		session.SetFlash(sess, session.FlashSuccess, FlashLoggedIn)
	}
	return redirect(c, PathHome)
}

// Quit удаляет пользователя из сессии.
func (h *Handler) Quit(c fiber.Ctx) error {
	if sess := middleware.SessionFrom(c); sess != nil {
		sess.Logout()
	}
	return redirectWithFlash(c, PathLogin, session.FlashSuccess, FlashLoggedOut)
}

// isUserError сообщает, что ошибка вызвана вводом пользователя.
func isUserError(err error) bool {
	return errors.Is(err, entities.ErrValidation) ||
		errors.Is(err, entities.ErrConflict) ||
		errors.Is(err, entities.ErrAuth)
}

// flashForError подбирает текст flash-сообщения для ошибки сценария.
func flashForError(err error) string {
	switch {
	case errors.Is(err, entities.ErrInvalidUsername):
		return FlashInvalidUsername
	case errors.Is(err, entities.ErrInvalidPassword):
		return FlashInvalidPassword
	case errors.Is(err, entities.ErrPasswordMismatch):
		return FlashPasswordMismatch
	case errors.Is(err, entities.ErrUsernameTaken):
		return FlashUsernameTaken
	case errors.Is(err, entities.ErrUserNotFound):
		return FlashUserNotFound
	case errors.Is(err, entities.ErrWrongPassword):
		return FlashWrongPassword
	case errors.Is(err, entities.ErrEmptyNoteField):
		return FlashEmptyNoteField
	default:
		return FlashUnknownError
	}
}
