// Package repositories определяет интерфейсы хранилищ пользователей и заметок.
package repositories

import (
	"context"

	"mynote/internal/mynote/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователей.
type UserRepository interface {
	// FindByUsername возвращает entities.ErrUserNotFound, если пользователя нет.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// Create возвращает entities.ErrUsernameTaken при нарушении уникальности имени.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
}
