package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "jobboard_session"

	contextKeySession = "session"
)

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Skipper echomiddleware.Skipper
	TTL     time.Duration
	Secure  bool
}

// Session loads the request session into the echo context and writes it
// back, with a refreshed cookie, when a handler changed it.
func Session(svc ports.SessionService, cfg SessionConfig, log zerolog.Logger) echo.MiddlewareFunc {
	skipper := cfg.Skipper
	if skipper == nil {
		skipper = echomiddleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			var token string
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}
			SetSession(c, svc.Load(c.Request().Context(), token))

			c.Response().Before(func() {
				sess := SessionFrom(c)
				if sess == nil || !sess.Dirty() {
					return
				}
				signed, err := svc.Persist(c.Request().Context(), sess)
				if err != nil {
					log.Error().Err(err).Str("session_id", sess.ID).Msg("session persist failed")
					return
				}
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    signed,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			})

			return next(c)
		}
	}
}

// SessionFrom returns the session loaded by the Session middleware.
func SessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get(contextKeySession).(*domain.Session)
	return sess
}

// SetSession replaces the request session, e.g. after login rotated it.
func SetSession(c echo.Context, sess *domain.Session) {
	c.Set(contextKeySession, sess)
}
