// Package credentials проверяет формат имени пользователя и пароля.
package credentials

import (
	"regexp"
	"unicode/utf8"
)

// MinPasswordLength - минимальная длина пароля в символах.
const MinPasswordLength = 6

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
)

// ValidUsername сообщает, состоит ли имя из 3-20 латинских букв, цифр или подчеркиваний.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidPassword сообщает, что пароль не короче MinPasswordLength
// и содержит цифру, строчную и заглавную латинские буквы.
func ValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength &&
		digitPattern.MatchString(password) &&
		lowerPattern.MatchString(password) &&
		upperPattern.MatchString(password)
}
