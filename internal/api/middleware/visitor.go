package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/core/ports"
	"github.com/trackeo/trackeo-web/internal/i18n"
)

const (
	visitorCookie = "trackeo_visitor"
	visitorTTL    = 365 * 24 * time.Hour

	ctxVisitorID = "visitor_id"
	ctxPrefs     = "prefs"
	ctxLocale    = "locale"
)

// Visitor assigns every browser a stable anonymous id via cookie and loads
// its stored preferences from the vault. Downstream handlers read the id,
// preferences, and resolved locale from the request context.
func Visitor(vault ports.PreferenceVault) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(visitorCookie); err == nil {
				id = cookie.Value
			}
			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     visitorCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(visitorTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			prefs := vault.Load(c.Request().Context(), id)

			c.Set(ctxVisitorID, id)
			c.Set(ctxPrefs, prefs)
			c.Set(ctxLocale, i18n.Resolve(prefs.Locale))

			return next(c)
		}
	}
}

// VisitorID returns the anonymous visitor id set by the Visitor middleware.
func VisitorID(c echo.Context) string {
	id, _ := c.Get(ctxVisitorID).(string)
	return id
}

// Prefs returns the visitor preferences loaded by the Visitor middleware.
func Prefs(c echo.Context) ports.Preferences {
	prefs, _ := c.Get(ctxPrefs).(ports.Preferences)
	return prefs
}

// Locale returns the resolved UI locale for this request.
func Locale(c echo.Context) string {
	locale, _ := c.Get(ctxLocale).(string)
	if locale == "" {
		return "en"
	}
	return locale
}
