package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mvcstore/catalog-admin/docs"
	"github.com/mvcstore/catalog-admin/internal/api/handler"
	"github.com/mvcstore/catalog-admin/internal/api/middleware"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs from the core.
type Dependencies struct {
	Catalog  ports.CatalogBrowser
	Workflow ports.AdminWorkflow
	Tokens   handler.TokenIssuer
	Auth     ports.AuthService

	JWTSecret     string
	TokenTTL      time.Duration
	SecureCookies bool

	// Checks feed the readiness probe, keyed by dependency name.
	Checks map[string]handler.DependencyCheck

	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(prometheusConfig(deps.Registry)))
	e.Use(middleware.Auth(deps.JWTSecret, deps.Auth))

	// --- Public catalog ---
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	e.GET("/products", catalogHandler.Browse)

	// --- Administration (authorization happens in the workflow) ---
	adminHandler := handler.NewAdminHandler(deps.Workflow, deps.Tokens, deps.SecureCookies)
	admin := e.Group("/admin")
	admin.GET("", adminHandler.Index)
	admin.GET("/edit/:id", adminHandler.Edit)
	admin.POST("/edit", adminHandler.Save)
	admin.GET("/create", adminHandler.Create)
	admin.POST("/delete/:id", adminHandler.Delete)

	// --- Account ---
	accountHandler := handler.NewAccountHandler(deps.Auth, deps.TokenTTL, deps.SecureCookies)
	e.GET(LoginPath, accountHandler.LoginPrompt)
	e.POST(LoginPath, accountHandler.Login)
	e.POST("/account/logout", accountHandler.Logout)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics & docs ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(metricsHandlerConfig(deps.Registry)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func prometheusConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Namespace: "catalog", Subsystem: "http"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandlerConfig(reg *prometheus.Registry) echoprometheus.HandlerConfig {
	cfg := echoprometheus.HandlerConfig{}
	if reg != nil {
		cfg.Gatherer = reg
	}
	return cfg
}

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
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("principal", middleware.PrincipalFrom(c).Identifier).
				Msg("request")
			return nil
		},
	})
}
