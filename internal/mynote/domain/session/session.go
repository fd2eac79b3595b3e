// Package session описывает сессию браузера и одноразовые flash-сообщения.
package session

import (
	"time"

	"github.com/google/uuid"

	"mynote/internal/mynote/domain/entities"
)

// DefaultTTL - время жизни сессии с момента создания.
const DefaultTTL = 7 * 24 * time.Hour

// Session хранит состояние одного браузера.
// User и Flash не заданы, пока пользователь не вошел и нет ожидающего сообщения.
type Session struct {
	ID        string         `json:"id"`
	User      *entities.User `json:"user,omitempty"`
	Flash     *Flash         `json:"flash,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`

	dirty bool
}

// New создает новую сессию с фиксированным сроком жизни ttl.
func New(now time.Time, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		ExpiresAt: now.UTC().Add(ttl),
		dirty:     true,
	}
}

// Expired сообщает, истек ли срок жизни сессии.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Authenticated сообщает, вошел ли пользователь.
func (s *Session) Authenticated() bool {
	return s.User != nil
}

// Login сохраняет в сессии копию пользователя без хэша пароля.
func (s *Session) Login(user *entities.User) {
	s.User = user.WithoutPassword()
	s.dirty = true
}

// Logout удаляет пользователя из сессии.
func (s *Session) Logout() {
	s.User = nil
	s.dirty = true
}

// Dirty сообщает, изменилась ли сессия с момента загрузки.
func (s *Session) Dirty() bool {
	return s.dirty
}

// MarkClean сбрасывает признак изменения после сохранения.
func (s *Session) MarkClean() {
	s.dirty = false
}
