package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/jovens-paroquia/membership/docs"
	"github.com/jovens-paroquia/membership/internal/api/handler"
	"github.com/jovens-paroquia/membership/internal/api/middleware"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// Deps are the services the HTTP API is built on.
type Deps struct {
	Session       ports.SessionService
	Registration  ports.RegistrationService
	PasswordReset ports.PasswordResetService
	Profiles      ports.ProfileService
	Pages         handler.PageRouter
	Navigator     ports.Navigator
	Scheduler     ports.Scheduler
	// Validator checks request forms. Defaults to handler.NewValidator.
	Validator echo.Validator

	// RedirectDelay is the pause between a successful registration and the
	// move to the login page.
	RedirectDelay time.Duration
	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.Check
	// Registerer receives the HTTP request metrics. Defaults to the global registry.
	Registerer prometheus.Registerer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = deps.Validator
	if e.Validator == nil {
		e.Validator = handler.NewValidator()
	}
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "membership",
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper:    skipInfraRoutes,
	}))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Session)
	registrationHandler := handler.NewRegistrationHandler(deps.Registration, deps.Navigator, deps.Scheduler, deps.RedirectDelay)
	resetHandler := handler.NewPasswordResetHandler(deps.PasswordReset)
	navigationHandler := handler.NewNavigationHandler(deps.Pages)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	requireSession := middleware.RequireSession(deps.Session)

	// --- Session routes ---
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/signup", sessionHandler.Signup)
	e.POST("/auth/logout", sessionHandler.Logout)
	e.GET("/session", sessionHandler.Current)

	// --- Registration and password reset ---
	e.POST("/auth/register", registrationHandler.Register)
	e.GET("/auth/register/status", registrationHandler.Status)
	e.POST("/auth/password-reset", resetHandler.Request)
	e.GET("/auth/password-reset/status", resetHandler.Status)

	// --- View ---
	e.GET("/navigation", navigationHandler.Current)
	e.POST("/navigation", navigationHandler.Navigate)
	e.GET("/profile", profileHandler.Current, requireSession)

	// --- Health probes and tooling (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func skipInfraRoutes(c echo.Context) bool {
	p := c.Path()
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
