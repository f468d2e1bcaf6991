package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/99minutos/jobboard/internal/api/middleware"
)

// viewData is the map handed to a template.
type viewData map[string]any

// render fills the values every page shows (flashes, current user, CSRF
// token) and renders the named view with status 200.
func render(c echo.Context, name string, data viewData) error {
	if data == nil {
		data = viewData{}
	}
	if sess := middleware.SessionFrom(c); sess != nil {
		data["Flashes"] = sess.PopFlashes()
		if sess.Authenticated() {
			data["User"] = sess.Username
		}
	}
	data["CSRF"], _ = c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string)
	return c.Render(http.StatusOK, name, map[string]any(data))
}
