// Package services предоставляет фабрику сервисов паролей и подписи cookie сессии.
package services

import (
	"mynote/internal/mynote/ports/services"
)

// ServiceFactory создает все необходимые сервисы для аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	cookieSigner    services.CookieSigner
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(sessionSecret string, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		cookieSigner:    NewCookieSigner(sessionSecret),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// CookieSigner возвращает сервис подписи cookie сессии.
func (f *ServiceFactory) CookieSigner() services.CookieSigner {
	return f.cookieSigner
}
