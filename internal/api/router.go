package api

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/unrolled/secure"

	_ "github.com/rotaract-d4465/portal/docs"
	"github.com/rotaract-d4465/portal/internal/api/handler"
	"github.com/rotaract-d4465/portal/internal/api/middleware"
	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Sessions      ports.SessionService
	Convocatorias ports.ConvocatoriaService
	Proyectos     ports.ProyectoService
	Clubes        ports.ClubAPI
	Views         handler.ViewRunner
	Checks        map[string]handler.Check
	Log           zerolog.Logger

	// LoginRateLimit caps auth attempts per IP per minute. Zero disables it.
	LoginRateLimit int
	Production     bool

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echo.WrapMiddleware(secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      !d.Production,
	}).Handler))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "rotaract",
		Subsystem:  "http",
		Registerer: registerer,
	}))

	authHandler := handler.NewAuthHandler(d.Sessions)
	dashboardHandler := handler.NewDashboardHandler(d.Sessions)
	convocatoriaHandler := handler.NewConvocatoriaHandler(d.Convocatorias, d.Views)
	proyectoHandler := handler.NewProyectoHandler(d.Proyectos, d.Views)
	clubHandler := handler.NewClubHandler(d.Clubes, d.Views)

	// --- Public routes ---
	e.GET("/", dashboardHandler.Index)

	auth := e.Group("/auth")
	if d.LoginRateLimit > 0 {
		auth.Use(echo.WrapMiddleware(httprate.Limit(d.LoginRateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"demasiados intentos, espera un momento"}`))
			}),
		)))
	}
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Dashboard (auth gate, then role gates) ---
	dash := e.Group(domain.DashboardRoot, middleware.RequireSession(d.Sessions))
	dash.GET("", dashboardHandler.Home)
	dash.RouteNotFound("/*", handler.RedirectTo("/"))

	interesado := dash.Group("/interesado", middleware.RequireRole(d.Sessions, domain.RoleInteresado))
	interesado.GET("", handler.RedirectTo("/dashboard/interesado/convocatorias"))
	interesado.GET("/convocatorias", convocatoriaHandler.ListPublic)
	interesado.POST("/convocatorias/:id/inscribirse", convocatoriaHandler.Apply)

	socio := dash.Group("/socio", middleware.RequireRole(d.Sessions, domain.RoleSocio))
	socio.GET("", handler.RedirectTo("/dashboard/socio/proyectos"))
	socio.GET("/proyectos", proyectoHandler.List)
	socio.POST("/proyectos/:id/inscribirse", proyectoHandler.Apply)
	socio.GET("/proyectos/:id/aceptados", proyectoHandler.Accepted)

	presidente := dash.Group("/presidente", middleware.RequireRole(d.Sessions, domain.RolePresidente))
	presidente.GET("", handler.RedirectTo("/dashboard/presidente/convocatorias"))
	presidente.GET("/convocatorias", convocatoriaHandler.ListClub)
	presidente.POST("/convocatorias", convocatoriaHandler.Create)
	presidente.PATCH("/convocatorias/:id", convocatoriaHandler.Update)
	presidente.GET("/convocatorias/:id/inscripciones", convocatoriaHandler.ListInscripciones)
	presidente.POST("/convocatorias/:id/inscripciones/:regId/aceptar", convocatoriaHandler.Accept)
	presidente.POST("/convocatorias/:id/inscripciones/:regId/rechazar", convocatoriaHandler.Reject)
	presidente.GET("/proyectos", proyectoHandler.List)
	presidente.POST("/proyectos", proyectoHandler.Create)
	presidente.PATCH("/proyectos/:id", proyectoHandler.Update)
	presidente.GET("/proyectos/:id/inscripciones", proyectoHandler.ListInscripciones)

	representante := dash.Group("/representante", middleware.RequireRole(d.Sessions, domain.RoleRepresentante))
	representante.GET("", handler.RedirectTo("/dashboard/representante/clubes"))
	representante.GET("/clubes", clubHandler.List)

	proyectos := dash.Group("/proyectos", middleware.RequireRole(d.Sessions, domain.RolePresidente, domain.RoleRepresentante))
	proyectos.GET("", proyectoHandler.List)

	convocatorias := dash.Group("/convocatorias", middleware.RequireRole(d.Sessions, domain.RoleSocio, domain.RolePresidente, domain.RoleRepresentante))
	convocatorias.GET("", convocatoriaHandler.ListPublic)

	clubes := dash.Group("/clubes", middleware.RequireRole(d.Sessions, domain.RolePresidente, domain.RoleRepresentante))
	clubes.GET("", clubHandler.List)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Checks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Unknown routes land on the index.
	e.RouteNotFound("/*", handler.RedirectTo("/"))

	return e
}
