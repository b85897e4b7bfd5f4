package handler

import (
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/internal/core/ports"
	"github.com/trackeo/trackeo-web/internal/core/service"
)

// App is the application context shared by every page handler. It replaces
// any notion of package-level state: handlers receive their dependencies
// here and nowhere else.
type App struct {
	Catalog *service.CatalogService
	Gateway ports.BackendGateway
	Vault   ports.PreferenceVault
	Clock   clockwork.Clock
	Logger  zerolog.Logger
}

// view assembles the common template data for the current request.
func (a *App) view(c echo.Context, page string) *View {
	locale := middleware.Locale(c)
	prefs := middleware.Prefs(c)
	return &View{
		Page:     page,
		Locale:   locale,
		Toasts:   DrainFlash(c),
		SignedIn: prefs.Token.Token != "",
		Tier:     prefs.Token.Tier,
		fmt:      service.NewFormatter(locale, a.Clock),
	}
}

// NewErrorView builds the minimal view the error template needs. It exists
// so the HTTP error handler can render without a full application context.
func NewErrorView(c echo.Context, locale string, clock clockwork.Clock) *View {
	return &View{
		Page:   "error",
		Locale: locale,
		Toasts: DrainFlash(c),
		fmt:    service.NewFormatter(locale, clock),
	}
}

// formatter builds a request-scoped formatter without a full view, for
// handlers that post-process data before rendering.
func (a *App) formatter(c echo.Context) *service.Formatter {
	return service.NewFormatter(middleware.Locale(c), a.Clock)
}

// savePrefs persists the visitor preferences best-effort.
func (a *App) savePrefs(c echo.Context, prefs ports.Preferences) {
	a.Vault.Save(c.Request().Context(), middleware.VisitorID(c), prefs)
}
