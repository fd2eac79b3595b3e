// Package api определяет входные порты приложения.
package api

import (
	"context"

	"mynote/internal/mynote/domain/entities"
)

// AuthUseCase определяет операции регистрации и входа.
type AuthUseCase interface {
	Register(ctx context.Context, username, password, passwordRepeat string) (*entities.User, error)

	// Login возвращает пользователя без хэша пароля.
	Login(ctx context.Context, username, password string) (*entities.User, error)
}
