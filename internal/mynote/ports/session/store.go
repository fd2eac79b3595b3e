// Package session определяет порт хранилища сессий.
package session

import (
	"context"

	"mynote/internal/mynote/domain/session"
)

// Store хранит сессии между запросами.
type Store interface {
	// Load возвращает nil, nil, если сессия не найдена или истекла.
	Load(ctx context.Context, id string) (*session.Session, error)

	Save(ctx context.Context, s *session.Session) error

	Delete(ctx context.Context, id string) error
}
