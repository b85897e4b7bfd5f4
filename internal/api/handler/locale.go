package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/internal/i18n"
)

// LocaleHandler persists the language switcher choice.
type LocaleHandler struct {
	app *App
}

func NewLocaleHandler(app *App) *LocaleHandler {
	return &LocaleHandler{app: app}
}

// Set handles POST /locale and redirects back to the page the switch came
// from. Unknown locales resolve to English rather than erroring.
func (h *LocaleHandler) Set(c echo.Context) error {
	locale := i18n.Resolve(c.FormValue("locale"))

	prefs := middleware.Prefs(c)
	prefs.Locale = locale
	h.app.savePrefs(c, prefs)

	return c.Redirect(http.StatusSeeOther, returnTarget(c))
}

// returnTarget picks a safe redirect destination: a relative Referer path or
// one pointing at this host, otherwise the landing page.
func returnTarget(c echo.Context) string {
	ref := c.Request().Header.Get("Referer")
	if ref == "" {
		return "/"
	}
	// "//host/path" is protocol-relative and would leave this site.
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	if u, err := url.Parse(ref); err == nil && u.Host == c.Request().Host {
		return u.RequestURI()
	}
	return "/"
}
