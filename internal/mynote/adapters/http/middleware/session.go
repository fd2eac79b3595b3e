package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mynote/internal/mynote/domain/session"
	svc "mynote/internal/mynote/ports/services"
	ports "mynote/internal/mynote/ports/session"
	"mynote/pkg/logger"
)

const (
	msgInvalidSessionCookie = "ignoring invalid session cookie"
	msgSessionCreated       = "new session created"
	msgErrLoadSession       = "failed to load session"
	msgErrSaveSession       = "failed to save session"
	msgErrSignCookie        = "failed to sign session cookie"
)

// SessionOptions задает параметры cookie сессии.
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	// Now по умолчанию time.Now.
	Now func() time.Time
}

// NewSessionMiddleware загружает сессию по подписанной cookie или создает новую.
// Измененная сессия сохраняется после обработки запроса.
func NewSessionMiddleware(store ports.Store, signer svc.CookieSigner, opts SessionOptions) fiber.Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TTL <= 0 {
		opts.TTL = session.DefaultTTL
	}

	return func(c fiber.Ctx) error {
		requestCtx := RequestContext(c)
		log := logger.Log(requestCtx).With(zap.String("middleware", "session"))

		sess := loadSession(requestCtx, c.Cookies(opts.CookieName), store, signer, log)
		if sess == nil {
			sess = session.New(opts.Now(), opts.TTL)
			log.Debug(requestCtx, msgSessionCreated, zap.String("session_id", sess.ID))

			value, err := signer.Sign(requestCtx, sess.ID, sess.ExpiresAt)
			if err != nil {
				log.Error(requestCtx, msgErrSignCookie, zap.Error(err))
			} else {
				c.Cookie(&fiber.Cookie{
					Name:     opts.CookieName,
					Value:    value,
					Path:     "/",
					Expires:  sess.ExpiresAt,
					Secure:   opts.Secure,
					HTTPOnly: true,
					SameSite: fiber.CookieSameSiteLaxMode,
				})
			}
		}

		c.Locals(LocalsSession, sess)

		err := c.Next()

		if sess.Dirty() {
			if saveErr := store.Save(requestCtx, sess); saveErr != nil {
				log.Error(requestCtx, msgErrSaveSession, zap.Error(saveErr))
			}
		}

		return err
	}
}

// loadSession возвращает nil, если cookie отсутствует, недействительна или сессия не найдена.
func loadSession(ctx context.Context, cookie string, store ports.Store, signer svc.CookieSigner, log *logger.Logger) *session.Session {
	if cookie == "" {
		return nil
	}

	sessionID, err := signer.Verify(ctx, cookie)
	if err != nil {
		log.Debug(ctx, msgInvalidSessionCookie, zap.Error(err))
		return nil
	}

	sess, err := store.Load(ctx, sessionID)
	if err != nil {
		log.Error(ctx, msgErrLoadSession, zap.Error(err))
		return nil
	}

	return sess
}
