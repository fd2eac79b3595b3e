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

// Index отдает список заметок текущего пользователя.
func (h *Handler) Index(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	sess := middleware.SessionFrom(c)

	notes, err := h.notes.ListByAuthor(requestCtx, sess.User.Username)
	if err != nil {
		logger.Log(requestCtx).Error(requestCtx, "listing notes failed", zap.Error(err))
		// Страница ошибки показывает текущую ошибку, а не ожидающее сообщение.
		session.TakeFlash(sess)
		session.SetFlash(sess, session.FlashError, FlashUnknownError)
		return render(c, fiber.StatusInternalServerError, views.Error(page(c, views.TitleError)))
	}

	return render(c, fiber.StatusOK, views.Index(page(c, views.TitleHome), notes))
}

// PostForm отдает форму новой заметки.
func (h *Handler) PostForm(c fiber.Ctx) error {
	return render(c, fiber.StatusOK, views.Post(page(c, views.TitlePost)))
}

// Post создает заметку от имени текущего пользователя.
func (h *Handler) Post(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	sess := middleware.SessionFrom(c)

	_, err := h.notes.Create(requestCtx,
		sess.User.Username,
		c.FormValue("title"),
		c.FormValue("tag"),
		c.FormValue("content"),
	)
	if err != nil {
		if !isUserError(err) {
			logger.Log(requestCtx).Error(requestCtx, "creating note failed", zap.Error(err))
		}
		return redirectWithFlash(c, PathPost, session.FlashError, flashForError(err))
	}

	return redirect(c, PathHome)
}

// Detail отдает заметку по ID. Автор заметки не проверяется.
func (h *Handler) Detail(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)

	note, err := h.notes.Get(requestCtx, c.Params("id"))
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return h.NotFound(c)
		}
		logger.Log(requestCtx).Error(requestCtx, "getting note failed", zap.Error(err))
		return redirectWithFlash(c, PathHome, session.FlashError, FlashUnknownError)
	}

	return render(c, fiber.StatusOK, views.Detail(page(c, views.TitleDetail), note))
}
