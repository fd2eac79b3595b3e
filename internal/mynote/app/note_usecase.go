package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/ports/api"
	"mynote/internal/mynote/ports/repositories"
	"mynote/pkg/logger"
)

const (
	methodCreateNote   = "CreateNote"
	methodListNotes    = "ListNotes"
	methodGetNote      = "GetNote"
	msgEmptyNoteField  = "note has empty required field"
	msgNoteCreated     = "note created successfully"
	msgNotesListed     = "notes listed"
	msgNoteNotFound    = "note not found"
	msgErrCreateNote   = "failed to create note"
	msgErrListNotes    = "failed to list notes"
	msgErrGetNote      = "failed to get note"
	errCtxValidateNote = "validating note"
	errCtxCreateNote   = "creating note"
	errCtxListNotes    = "listing notes"
	errCtxGetNote      = "getting note"
)

// NoteUseCaseImpl реализует интерфейс NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает сервис заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// Create сохраняет заметку пользователя author.
func (n *NoteUseCaseImpl) Create(ctx context.Context, author, title, tag, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("author", author))

	if strings.TrimSpace(title) == "" || strings.TrimSpace(tag) == "" || strings.TrimSpace(content) == "" {
		log.Debug(ctx, msgEmptyNoteField)
		return nil, fmt.Errorf("%s: %w", errCtxValidateNote, entities.ErrEmptyNoteField)
	}

	note, err := n.noteRepo.Create(ctx, entities.NewNote(author, title, tag, content))
	if err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return nil, storeError(errCtxCreateNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("note_id", note.ID))
	return note, nil
}

// ListByAuthor возвращает все заметки автора.
func (n *NoteUseCaseImpl) ListByAuthor(ctx context.Context, author string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("author", author))

	notes, err := n.noteRepo.ListByAuthor(ctx, author)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, storeError(errCtxListNotes, err)
	}

	log.Debug(ctx, msgNotesListed, zap.Int("count", len(notes)))
	return notes, nil
}

// Get возвращает заметку по ID независимо от автора.
func (n *NoteUseCaseImpl) Get(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("note_id", id))

	note, err := n.noteRepo.FindByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrGetNote, zap.Error(err))
		return nil, storeError(errCtxGetNote, err)
	}
	if note == nil {
		log.Debug(ctx, msgNoteNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxGetNote, entities.ErrNoteNotFound)
	}

	return note, nil
}
