// Package entities содержит сущности домена заметок.
package entities

import "time"

// User представляет зарегистрированного пользователя.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// WithoutPassword возвращает копию пользователя без хэша пароля.
func (u *User) WithoutPassword() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
