package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/ports/repositories"
	"mynote/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("author", note.Author))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, author, tag, content)
         VALUES ($1, $2, $3, $4)
         RETURNING id, title, author, tag, content, created_at`,
		note.Title, note.Author, note.Tag, note.Content,
	).Scan(&created.ID, &created.Title, &created.Author, &created.Tag, &created.Content, &created.CreatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to create note: %w", entities.ErrStore, err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// FindByID получает заметку по ID без проверки автора.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.FindByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", id))

	// Некорректный UUID не может принадлежать ни одной заметке.
	if _, err := uuid.Parse(id); err != nil {
		log.Debug(ctx, "malformed note id", zap.String("noteID", id))
		return nil, nil
	}

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, author, tag, content, created_at
         FROM notes
         WHERE id = $1`,
		id,
	).Scan(&note.ID, &note.Title, &note.Author, &note.Tag, &note.Content, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get note: %w", entities.ErrStore, err)
	}

	return &note, nil
}

// ListByAuthor получает все заметки автора, новые первыми.
func (r *NoteRepository) ListByAuthor(ctx context.Context, author string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByAuthor"))
	log.Debug(ctx, "listing notes", zap.String("author", author))

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, author, tag, content, created_at
         FROM notes
         WHERE author = $1
         ORDER BY created_at DESC, id`,
		author,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list notes: %w", entities.ErrStore, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Author, &note.Tag, &note.Content, &note.CreatedAt); err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("%w: failed to scan note: %w", entities.ErrStore, err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("%w: error iterating rows: %w", entities.ErrStore, err)
	}

	return notes, nil
}
