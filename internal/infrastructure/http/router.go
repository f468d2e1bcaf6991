package http

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/jobboard/internal/core/ports"
	"github.com/99minutos/jobboard/internal/infrastructure/http/handlers"
)

// RegisterHealth mounts the probes on e. They sit outside sessions and CSRF.
func RegisterHealth(e *echo.Echo, deps map[string]ports.Pinger) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
}
