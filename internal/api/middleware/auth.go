package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/jobboard/internal/api/metrics"
)

const (
	// LoginRequiredFlash is shown after the guard bounces a request.
	LoginRequiredFlash = "You need to be logged in to access this page."

	// ContextKeyUserID carries the authenticated user's id for handlers.
	ContextKeyUserID = "user_id"
)

// RequireLogin blocks anonymous requests, sending them to the login page
// with the requested URI in the next parameter.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

			sess := SessionFrom(c)
			userID, ok := sess.CurrentUserID()
			if !ok {
				if sess != nil {
					sess.AddFlash(LoginRequiredFlash)
				}
				metrics.GuardRedirectsTotal.Inc()
				target := "/login?next=" + url.QueryEscape(c.Request().RequestURI)
				return c.Redirect(http.StatusSeeOther, target)
			}

			c.Set(ContextKeyUserID, userID)
			return next(c)
		}
	}
}

// SafeNext returns next when it is a local path and fallback otherwise.
func SafeNext(next, fallback string) string {
	if next == "" || next[0] != '/' || len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return next
}
