package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/lumenstudio/studio/docs"
	"github.com/lumenstudio/studio/internal/api/handler"
	"github.com/lumenstudio/studio/internal/api/middleware"
	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/gate"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/pkg/validate"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Logger        zerolog.Logger
	ProfileSecret string
	LoginRate     float64
	LoginBurst    int

	Sessions  ports.SessionDirectory
	Clients   ports.ClientService
	Portfolio ports.PortfolioService
	Settings  ports.SettingsService
	Confirmer ports.Confirmer
	Pingers   map[string]ports.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.Echo{}
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Operational routes (no profile, no auth) ---
	health := handler.NewHealthHandler(deps.Pingers)
	e.GET("/health", health.Liveness)        // liveness: is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Everything else runs inside a browser profile ---
	site := e.Group("", middleware.Profile(deps.ProfileSecret))
	loginLimit := middleware.NewRateLimiter(deps.LoginRate, deps.LoginBurst).Middleware()

	pages := handler.NewPageHandler(gate.New(deps.Sessions))
	site.GET("/pages/:view", pages.Check)

	clientAuth := handler.NewAuthHandler(deps.Sessions, domain.KindClient)
	site.POST("/auth/login", clientAuth.Login, loginLimit)
	site.POST("/auth/logout", clientAuth.Logout)
	site.GET("/auth/me", clientAuth.Me)

	adminAuth := handler.NewAuthHandler(deps.Sessions, domain.KindAdmin)
	site.POST("/admin/auth/login", adminAuth.Login, loginLimit)
	site.POST("/admin/auth/logout", adminAuth.Logout)
	site.GET("/admin/auth/me", adminAuth.Me)

	gallery := handler.NewGalleryHandler(deps.Clients)
	site.GET("/gallery", gallery.Get, middleware.RequireSession(deps.Sessions, domain.KindClient))

	portfolio := handler.NewPortfolioHandler(deps.Portfolio)
	settings := handler.NewSettingsHandler(deps.Settings)
	site.GET("/portfolio", portfolio.List)
	site.GET("/portfolio/categories", portfolio.Categories)
	site.GET("/settings", settings.Get)
	site.GET("/theme", settings.Theme)
	site.PUT("/theme", settings.SetTheme)
	site.POST("/theme/toggle", settings.ToggleTheme)

	// --- Admin dashboard ---
	admin := site.Group("/admin", middleware.RequireSession(deps.Sessions, domain.KindAdmin))
	clients := handler.NewClientHandler(deps.Clients)
	admin.GET("/clients", clients.List)
	admin.POST("/clients", clients.Create)
	admin.GET("/clients/:id", clients.Get)
	admin.POST("/clients/:id/delete-request", clients.RequestDelete)
	admin.POST("/clients/:id/media", clients.AppendMedia)
	admin.DELETE("/clients/:id/media/:mediaId", clients.RemoveMedia)
	admin.DELETE("/clients/:id/media/at/:index", clients.RemoveMediaAt)
	admin.POST("/portfolio", portfolio.Create)
	admin.POST("/portfolio/:id/delete-request", portfolio.RequestDelete)
	admin.POST("/confirmations", handler.NewConfirmationHandler(deps.Confirmer).Confirm)
	admin.PUT("/settings", settings.Save)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
