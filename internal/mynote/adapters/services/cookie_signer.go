package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	svc "mynote/internal/mynote/ports/services"
	"mynote/pkg/logger"
)

const (
	methodSign   = "CookieSigner.Sign"
	methodVerify = "CookieSigner.Verify"

	msgSigningCookie   = "signing session cookie"
	msgCookieExpired   = "session cookie has expired"
	msgCookieInvalid   = "invalid session cookie"
	msgCookieValidated = "session cookie validated"

	errCtxSigningCookie = "signing session cookie"
	errCtxParsingCookie = "parsing session cookie"
)

// Ошибки подписи cookie.
var (
	ErrEmptySecret      = errors.New("empty signing secret")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrInvalidCookie    = errors.New("invalid session cookie")
	ErrExpiredCookie    = errors.New("session cookie has expired")
)

// SessionClaims - содержимое подписанного значения cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieSignerJWT подписывает идентификатор сессии с помощью HS256.
type CookieSignerJWT struct {
	secret []byte
}

// NewCookieSigner создает подписчика cookie с секретом secret.
func NewCookieSigner(secret string) svc.CookieSigner {
	return &CookieSignerJWT{secret: []byte(secret)}
}

// Sign возвращает подписанное значение cookie, действительное до expiresAt.
func (s *CookieSignerJWT) Sign(ctx context.Context, sessionID string, expiresAt time.Time) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSign))
	log.Debug(ctx, msgSigningCookie)

	if len(s.secret) == 0 {
		return "", fmt.Errorf("%s: %w", errCtxSigningCookie, ErrEmptySecret)
	}

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error(ctx, errCtxSigningCookie, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxSigningCookie, err)
	}

	return value, nil
}

// Verify проверяет подпись и срок действия значения cookie.
func (s *CookieSignerJWT) Verify(ctx context.Context, value string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))

	token, err := jwt.ParseWithClaims(value, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgCookieExpired)
			return "", fmt.Errorf("%s: %w", errCtxParsingCookie, ErrExpiredCookie)
		}
		log.Debug(ctx, msgCookieInvalid, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxParsingCookie, ErrInvalidCookie, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		log.Debug(ctx, msgCookieInvalid)
		return "", fmt.Errorf("%s: %w", errCtxParsingCookie, ErrInvalidCookie)
	}

	log.Debug(ctx, msgCookieValidated)
	return claims.SessionID, nil
}
