// Package redis хранит сессии браузера в Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/domain/session"
	ports "mynote/internal/mynote/ports/session"
	"mynote/pkg/logger"
)

// KeyPrefix - префикс ключей сессий.
const KeyPrefix = "session:"

// Константы для логирования.
const (
	LogMethodLoad   = "SessionStore.Load"
	LogMethodSave   = "SessionStore.Save"
	LogMethodDelete = "SessionStore.Delete"

	ErrorFailedToLoad   = "failed to load session from redis"
	ErrorFailedToDecode = "failed to decode session"
	ErrorFailedToEncode = "failed to encode session"
	ErrorFailedToSave   = "failed to save session in redis"
	ErrorFailedToDelete = "failed to delete session from redis"
)

// SessionStore реализует ports.Store поверх Redis.
// Время жизни ключа совпадает со сроком жизни сессии.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// Option настраивает SessionStore.
type Option func(*SessionStore)

// WithClock задает источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		s.now = now
	}
}

// NewSessionStore создает хранилище сессий.
func NewSessionStore(client *redis.Client, opts ...Option) ports.Store {
	store := &SessionStore{client: client, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func key(id string) string {
	return KeyPrefix + id
}

// Load читает сессию по идентификатору.
func (s *SessionStore) Load(ctx context.Context, id string) (*session.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodLoad))

	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToLoad, zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrStore, ErrorFailedToLoad, err)
	}

	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// Поврежденная запись считается отсутствующей.
		log.Warn(ctx, ErrorFailedToDecode, zap.Error(err))
		return nil, nil
	}

	if sess.ID != id || sess.Expired(s.now()) {
		return nil, nil
	}

	return &sess, nil
}

// Save сохраняет сессию до момента ее истечения.
func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSave))

	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		log.Error(ctx, ErrorFailedToEncode, zap.Error(err))
		return fmt.Errorf("%w: %s: %w", entities.ErrStore, ErrorFailedToEncode, err)
	}

	if err := s.client.Set(ctx, key(sess.ID), raw, ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSave, zap.Error(err))
		return fmt.Errorf("%w: %s: %w", entities.ErrStore, ErrorFailedToSave, err)
	}

	sess.MarkClean()
	return nil
}

// Delete удаляет сессию.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDelete))

	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
		return fmt.Errorf("%w: %s: %w", entities.ErrStore, ErrorFailedToDelete, err)
	}
	return nil
}
