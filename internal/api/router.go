package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/jobboard/internal/api/handler"
	"github.com/99minutos/jobboard/internal/api/middleware"
	"github.com/99minutos/jobboard/internal/api/views"
	"github.com/99minutos/jobboard/internal/core/ports"
	infrahttp "github.com/99minutos/jobboard/internal/infrastructure/http"

	_ "github.com/99minutos/jobboard/docs"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Logger zerolog.Logger

	Auth         ports.AuthService
	Jobs         ports.JobService
	Applications ports.ApplicationService
	Sessions     ports.SessionService

	// Readiness lists the backends pinged by /health/ready.
	Readiness map[string]ports.Pinger

	// Registry receives the HTTP metrics. A fresh one is used when nil.
	Registry *prometheus.Registry

	SessionTTL   time.Duration
	CookieSecure bool
	CSRFEnabled  bool
}

// isInfraPath reports probe, metrics and docs paths. They bypass sessions,
// CSRF and access logging.
func isInfraPath(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || p == "/health" || strings.HasPrefix(p, "/health/") || strings.HasPrefix(p, "/swagger/")
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger, isInfraPath))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "same-origin",
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "jobboard",
		Registerer: reg,
		Skipper:    isInfraPath,
	}))
	if deps.CSRFEnabled {
		e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			Skipper:        isInfraPath,
			TokenLookup:    "form:_csrf",
			CookieName:     "_csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   deps.CookieSecure,
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}
	e.Use(middleware.Session(deps.Sessions, middleware.SessionConfig{
		Skipper: isInfraPath,
		TTL:     deps.SessionTTL,
		Secure:  deps.CookieSecure,
	}, deps.Logger))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions, deps.Logger)
	jobHandler := handler.NewJobHandler(deps.Jobs, deps.Applications, deps.Logger)
	pageHandler := handler.NewPageHandler()
	requireLogin := middleware.RequireLogin()

	// --- Public pages ---
	e.GET("/", pageHandler.Home)
	e.GET("/main", pageHandler.Home)
	e.GET("/about", pageHandler.About)
	e.GET("/contact", pageHandler.Contact)
	e.GET("/jobs", jobHandler.ListJobs)

	// --- Auth routes ---
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Owner routes (login required) ---
	e.GET("/dashboard", jobHandler.Dashboard, requireLogin)
	e.GET("/post_job", jobHandler.PostJobPage, requireLogin)
	e.POST("/post_job", jobHandler.PostJob, requireLogin)
	e.GET("/try_new_job", jobHandler.TryNewJob, requireLogin)
	e.GET("/job/:id", jobHandler.JobDetail, requireLogin)
	e.POST("/job/:id", jobHandler.Apply, requireLogin)
	e.POST("/delete_job/:id", jobHandler.DeleteJob, requireLogin)

	// --- Probes, metrics and docs ---
	infrahttp.RegisterHealth(e, deps.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
