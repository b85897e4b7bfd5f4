package api

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/trackeo/trackeo-web/internal/api/handler"
	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/web"
)

// NewRouter builds the Echo instance with the renderer, middleware chain,
// and every page route registered.
func NewRouter(app *handler.App) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer(web.FS)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(app.Logger, app.Clock)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("trackeo_web"))
	e.Use(middleware.Visitor(app.Vault))

	// --- Static assets ---
	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, err
	}
	e.StaticFS("/static", staticFS)

	// --- Handlers ---
	home := handler.NewHomeHandler(app)
	pages := handler.NewPagesHandler(app)
	detail := handler.NewDetailHandler(app)
	auth := handler.NewAuthHandler(app)
	federations := handler.NewFederationsHandler(app)
	locale := handler.NewLocaleHandler(app)

	// --- Landing page and its form actions ---
	e.GET("/", home.Landing)
	e.POST("/athletes", home.RegisterAthlete)
	e.POST("/athletes/seed", home.SeedAthletes)
	e.POST("/events", home.CreateEvent)
	e.POST("/events/seed", home.SeedEvents)
	e.POST("/subscribe", home.Subscribe)

	// --- Collection and detail pages ---
	e.GET("/profiles", pages.Profiles)
	e.GET("/events", pages.Events)
	e.GET("/events/:id", detail.Event)
	e.POST("/events/:id/demo", detail.SeedEventDemo)
	e.GET("/athletes/:id", detail.Athlete)
	e.GET("/rosters", pages.Rosters)
	e.GET("/rosters/:id", detail.Roster)
	e.GET("/about", pages.About)

	// --- Auth and secure uploads ---
	e.GET("/login", auth.LoginPage)
	e.POST("/login", auth.Login)
	e.POST("/logout", auth.Logout)
	e.GET("/signup", auth.SignupPage)
	e.POST("/signup", auth.Signup)
	e.GET("/federations", federations.Page)
	e.POST("/federations/submissions", federations.Submit)

	// --- Preferences ---
	e.POST("/locale", locale.Set)

	// --- Operational endpoints ---
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
