package repositories

import (
	"context"

	"mynote/internal/mynote/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// FindByID возвращает nil, nil, если заметка не найдена.
	FindByID(ctx context.Context, id string) (*entities.Note, error)

	ListByAuthor(ctx context.Context, author string) ([]*entities.Note, error)
}
