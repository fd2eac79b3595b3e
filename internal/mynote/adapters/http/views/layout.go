// Package views содержит HTML-страницы приложения на templ-компонентах.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/domain/session"
)

// Заголовки страниц.
const (
	TitleHome     = "Home"
	TitleRegister = "Register"
	TitleLogin    = "Login"
	TitlePost     = "New note"
	TitleDetail   = "Note detail"
	TitleNotFound = "Not found"
	TitleError    = "Error"
)

// Page - общие данные всех страниц.
type Page struct {
	Title string
	User  *entities.User
	Flash *session.Flash
}

// htmlWriter запоминает первую ошибку записи.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Layout оборачивает body в общий каркас страницы с навигацией и flash-сообщением.
func Layout(page Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(page.Title)
		h.raw(` - myNote</title></head><body>`)

		h.component(ctx, nav(page.User))
		h.component(ctx, flash(page.Flash))

		h.raw(`<main>`)
		h.component(ctx, body)
		h.raw(`</main></body></html>`)

		return h.err
	})
}

func nav(user *entities.User) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<nav><a href="/">myNote</a>`)
		if user != nil {
			h.raw(` <a href="/post">New note</a> <span class="user">`)
			h.text(user.Username)
			h.raw(`</span> <a href="/quit">Log out</a>`)
		} else {
			h.raw(` <a href="/login">Log in</a> <a href="/register">Register</a>`)
		}
		h.raw(`</nav>`)

		return h.err
	})
}

func flash(f *session.Flash) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		lines := f.Lines()
		if len(lines) == 0 {
			return nil
		}

		h := &htmlWriter{w: w}
		h.raw(`<div class="flash flash-`)
		h.text(string(f.Kind))
		h.raw(`">`)
		for i, line := range lines {
			if i > 0 {
				h.raw(`<br>`)
			}
			h.text(line)
		}
		h.raw(`</div>`)

		return h.err
	})
}
