// Package app содержит сценарии использования приложения заметок.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mynote/internal/mynote/domain/credentials"
	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/ports/api"
	"mynote/internal/mynote/ports/repositories"
	svc "mynote/internal/mynote/ports/services"
	"mynote/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration  = "starting user registration"
	msgInvalidUsername    = "invalid username format"
	msgInvalidPassword    = "invalid password format"
	msgPasswordMismatch   = "password repeat does not match"
	msgUsernameExists     = "user with this username already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent username"
	msgWrongPasswordLogin = "wrong password provided"
	msgUserLoggedIn       = "user logged in successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
	errCtxComparingPasswords = "comparing passwords"
	errCtxCheckingUser       = "checking existing user"
	errCtxUsernameRegistered = "username already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя.
// Проверки выполняются до любого обращения к хранилищу.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, password, passwordRepeat string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if !credentials.ValidUsername(username) {
		log.Debug(ctx, msgInvalidUsername)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrInvalidUsername)
	}
	if !credentials.ValidPassword(password) {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrInvalidPassword)
	}
	if password != passwordRepeat {
		log.Debug(ctx, msgPasswordMismatch)
		return nil, fmt.Errorf("%s: %w", errCtxComparingPasswords, entities.ErrPasswordMismatch)
	}

	existingUser, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, storeError(errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgUsernameExists)
		return nil, fmt.Errorf("%s: %w", errCtxUsernameRegistered, entities.ErrUsernameTaken)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameExists)
			return nil, fmt.Errorf("%s: %w", errCtxUsernameRegistered, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, storeError(errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("user_id", createdUser.ID))

	return createdUser.WithoutPassword(), nil
}

// Login проверяет учетные данные и возвращает пользователя без хэша пароля.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if !credentials.ValidUsername(username) {
		log.Debug(ctx, msgInvalidUsername)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrInvalidUsername)
	}
	if !credentials.ValidPassword(password) {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrInvalidPassword)
	}

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, err)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, storeError(errCtxFindingUser, err)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgWrongPasswordLogin)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrWrongPassword)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("user_id", user.ID))

	return user.WithoutPassword(), nil
}

// storeError помечает ошибку хранилища видом entities.ErrStore.
func storeError(errCtx string, err error) error {
	if errors.Is(err, entities.ErrStore) {
		return fmt.Errorf("%s: %w", errCtx, err)
	}
	return fmt.Errorf("%s: %w: %w", errCtx, entities.ErrStore, err)
}
