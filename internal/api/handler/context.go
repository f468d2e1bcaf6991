package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/jobboard/internal/api/middleware"
	"github.com/99minutos/jobboard/internal/core/domain"
)

// ctxSession returns the request session. The Session middleware always sets
// one; its absence is a wiring bug.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}
	return sess, nil
}

// ctxUserID returns the id placed by RequireLogin.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}
	return id, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// redirect answers a form post or guard bounce with 303 See Other.
func redirect(c echo.Context, to string) error {
	return c.Redirect(http.StatusSeeOther, to)
}

// flashRedirect queues msg for the next page and redirects.
func flashRedirect(c echo.Context, sess *domain.Session, msg, to string) error {
	sess.AddFlash(msg)
	return redirect(c, to)
}
