package services

import (
	"context"
	"time"
)

// CookieSigner подписывает идентификатор сессии для хранения в cookie.
type CookieSigner interface {
	Sign(ctx context.Context, sessionID string, expiresAt time.Time) (string, error)

	// Verify возвращает идентификатор сессии из подписанного значения.
	Verify(ctx context.Context, value string) (string, error)
}
