package handler

import (
	"errors"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/api/metrics"
	"github.com/99minutos/jobboard/internal/api/middleware"
	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

const (
	flashSignupOK       = "Signup successful! Please log in."
	flashUsernameTaken  = "Username already taken. Please choose another."
	flashLoginOK        = "Login successful!"
	flashBadCredentials = "Invalid username or password."
	flashLoggedOut      = "You have been logged out."
	flashInvalidForm    = "Invalid form submission."
)

type AuthHandler struct {
	authService    ports.AuthService
	sessionService ports.SessionService
	logger         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessionService ports.SessionService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessionService: sessionService, logger: logger}
}

// SignupPage renders the signup form.
//
// @Summary  Signup form
// @Tags     auth
// @Produce  html
// @Success  200
// @Router   /signup [get]
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return render(c, "sign_up", nil)
}

// Signup creates a new account.
//
// @Summary  Register a new user
// @Tags     auth
// @Accept   x-www-form-urlencoded
// @Param    username  formData  string  true  "Username"
// @Param    password  formData  string  true  "Password"
// @Success  303  "Redirect to /login, or back to /signup with a notice"
// @Router   /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form signupForm
	if err := c.Bind(&form); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, flashInvalidForm, "/signup")
	}
	if err := c.Validate(&form); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, validationMessage(err), "/signup")
	}

	_, err = h.authService.Register(c.Request().Context(), form.Username, form.Password)
	switch {
	case err == nil:
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		return flashRedirect(c, sess, flashSignupOK, "/login")
	case errors.Is(err, domain.ErrDuplicateUsername):
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return flashRedirect(c, sess, flashUsernameTaken, "/signup")
	case errors.Is(err, domain.ErrValidation):
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, validationMessage(err), "/signup")
	default:
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
}

// LoginPage renders the login form, carrying the next parameter along.
//
// @Summary  Login form
// @Tags     auth
// @Produce  html
// @Param    next  query  string  false  "Local path to return to after login"
// @Success  200
// @Router   /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return render(c, "login", viewData{"Next": c.QueryParam("next")})
}

// Login verifies credentials and starts an authenticated session.
//
// @Summary  Log in
// @Tags     auth
// @Accept   x-www-form-urlencoded
// @Param    username  formData  string  true   "Username"
// @Param    password  formData  string  true   "Password"
// @Param    next      formData  string  false  "Local path to return to"
// @Success  303  "Redirect to next or /dashboard, or back to /login with a notice"
// @Router   /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return flashRedirect(c, sess, flashBadCredentials, "/login")
	}

	user, err := h.authService.Verify(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return err
		}
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		back := "/login"
		if form.Next != "" {
			back += "?next=" + url.QueryEscape(form.Next)
		}
		return flashRedirect(c, sess, flashBadCredentials, back)
	}

	started, err := h.sessionService.Start(c.Request().Context(), sess, user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
	middleware.SetSession(c, started)
	metrics.LoginsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return flashRedirect(c, started, flashLoginOK, middleware.SafeNext(form.Next, "/dashboard"))
}

// Logout ends the session and returns to the home page.
//
// @Summary  Log out
// @Tags     auth
// @Success  303  "Redirect to /"
// @Router   /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	anon, err := h.sessionService.End(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	middleware.SetSession(c, anon)
	return flashRedirect(c, anon, flashLoggedOut, "/")
}

// validationMessage extracts the user-facing part of a validation failure.
func validationMessage(err error) string {
	var fe *formError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return err.Error()
}
