package api

import (
	"context"

	"mynote/internal/mynote/domain/entities"
)

// NoteUseCase определяет операции с заметками.
type NoteUseCase interface {
	Create(ctx context.Context, author, title, tag, content string) (*entities.Note, error)

	ListByAuthor(ctx context.Context, author string) ([]*entities.Note, error)

	// Get возвращает entities.ErrNoteNotFound, если заметки нет.
	Get(ctx context.Context, id string) (*entities.Note, error)
}
