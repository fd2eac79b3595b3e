package entities

import (
	"errors"
	"fmt"
)

// Виды ошибок домена.
var (
	// ErrValidation - ошибка формата или несовпадения введенных данных.
	ErrValidation = errors.New("validation error")
	// ErrConflict - нарушение уникальности.
	ErrConflict = errors.New("conflict")
	// ErrAuth - неизвестный пользователь или неверный пароль.
	ErrAuth = errors.New("authentication failed")
	// ErrStore - сбой хранилища.
	ErrStore = errors.New("store failure")
)

// Ошибки пользователя.
var (
	ErrInvalidUsername  = fmt.Errorf("%w: username must be 3-20 letters, digits or underscores", ErrValidation)
	ErrInvalidPassword  = fmt.Errorf("%w: password must be at least 6 characters and contain a digit, a lowercase and an uppercase letter", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrUsernameTaken    = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrAuth)
	ErrWrongPassword    = fmt.Errorf("%w: wrong password", ErrAuth)
)

// ErrNoteNotFound возвращается, если заметка с указанным ID отсутствует.
var ErrNoteNotFound = errors.New("note not found")

// ErrEmptyNoteField возвращается, если у заметки не заполнен заголовок, тег или текст.
var ErrEmptyNoteField = fmt.Errorf("%w: title, tag and content are required", ErrValidation)
