package entities

import "time"

// Note представляет собой заметку пользователя.
// Author - имя пользователя-владельца, а не ссылка на его ID.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Tag       string    `json:"tag"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote создает новую заметку автора author.
func NewNote(author, title, tag, content string) *Note {
	return &Note{
		Title:     title,
		Author:    author,
		Tag:       tag,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
