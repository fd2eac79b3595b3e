package views

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"mynote/internal/mynote/domain/entities"
)

// DetailTimeLayout - формат времени создания заметки.
const DetailTimeLayout = "2006-01-02 15:04:05"

// Index - список заметок пользователя.
func Index(page Page, notes []*entities.Note) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		if len(notes) == 0 {
			h.raw(`<p class="empty">No notes yet. <a href="/post">Write one</a>.</p>`)
			return h.err
		}

		h.raw(`<ul class="notes">`)
		for _, note := range notes {
			h.raw(`<li class="note"><a href="/detail/`)
			h.text(url.PathEscape(note.ID))
			h.raw(`">`)
			h.text(note.Title)
			h.raw(`</a> <span class="tag">`)
			h.text(note.Tag)
			h.raw(`</span> <span class="author">`)
			h.text(note.Author)
			h.raw(`</span></li>`)
		}
		h.raw(`</ul>`)

		return h.err
	}))
}

// Register - форма регистрации.
func Register(page Page) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form method="post" action="/register">` +
			`<label>Username <input type="text" name="username" required></label>` +
			`<label>Password <input type="password" name="password" required></label>` +
			`<label>Repeat password <input type="password" name="passwordRepeat" required></label>` +
			`<button type="submit">Register</button></form>`)
		return h.err
	}))
}

// Login - форма входа.
func Login(page Page) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form method="post" action="/login">` +
			`<label>Username <input type="text" name="username" required></label>` +
			`<label>Password <input type="password" name="password" required></label>` +
			`<button type="submit">Log in</button></form>`)
		return h.err
	}))
}

// Post - форма новой заметки.
func Post(page Page) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form method="post" action="/post">` +
			`<label>Title <input type="text" name="title" required></label>` +
			`<label>Tag <input type="text" name="tag" required></label>` +
			`<label>Content <textarea name="content" required></textarea></label>` +
			`<button type="submit">Publish</button></form>`)
		return h.err
	}))
}

// Detail - страница заметки.
func Detail(page Page, note *entities.Note) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<article class="note"><h1>`)
		h.text(note.Title)
		h.raw(`</h1><p class="meta"><span class="author">`)
		h.text(note.Author)
		h.raw(`</span> <span class="tag">`)
		h.text(note.Tag)
		h.raw(`</span> <time>`)
		h.text(note.CreatedAt.Format(DetailTimeLayout))
		h.raw(`</time></p><div class="content">`)
		h.text(note.Content)
		h.raw(`</div></article>`)

		return h.err
	}))
}

// NotFound - страница 404.
func NotFound(page Page) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>404</h1><p>The page you are looking for does not exist.</p><p><a href="/">Back home</a></p>`)
		return h.err
	}))
}

// Error - страница внутренней ошибки.
func Error(page Page) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Something went wrong</h1><p><a href="/">Back home</a></p>`)
		return h.err
	}))
}
