package config

import (
	"errors"
	"time"
)

// DefaultSessionSecret - значение секрета по умолчанию, известное всем.
const DefaultSessionSecret = "change-me-session-secret"

// ErrDefaultSessionSecret возвращается, если в production не задан собственный секрет.
var ErrDefaultSessionSecret = errors.New("session secret must be set in production mode")

// SessionConfig содержит настройки cookie сессии.
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env:"MYNOTE_SESSION_COOKIE_NAME" env-default:"myNote"`
	Secret     string        `yaml:"secret" env:"MYNOTE_SESSION_SECRET" env-default:"change-me-session-secret"`
	TTL        time.Duration `yaml:"ttl" env:"MYNOTE_SESSION_TTL" env-default:"168h"`
	Secure     bool          `yaml:"secure" env:"MYNOTE_SESSION_SECURE" env-default:"false"`
}

// UsesDefaultSecret сообщает, что секрет не задан или совпадает со значением по умолчанию.
func (s *SessionConfig) UsesDefaultSecret() bool {
	return s.Secret == "" || s.Secret == DefaultSessionSecret
}

// PasswordConfig содержит настройки хэширования паролей.
type PasswordConfig struct {
	BCryptCost int `yaml:"bcrypt_cost" env:"MYNOTE_PASSWORD_BCRYPT_COST" env-default:"10"`
}
