package handler

import "github.com/labstack/echo/v4"

// PageHandler serves the static pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home renders the landing page.
//
// @Summary  Home page
// @Tags     pages
// @Produce  html
// @Success  200
// @Router   / [get]
// @Router   /main [get]
func (h *PageHandler) Home(c echo.Context) error {
	return render(c, "main", nil)
}

// About renders the about page.
//
// @Summary  About page
// @Tags     pages
// @Produce  html
// @Success  200
// @Router   /about [get]
func (h *PageHandler) About(c echo.Context) error {
	return render(c, "about", nil)
}

// Contact renders the contact page.
//
// @Summary  Contact page
// @Tags     pages
// @Produce  html
// @Success  200
// @Router   /contact [get]
func (h *PageHandler) Contact(c echo.Context) error {
	return render(c, "contact", nil)
}
