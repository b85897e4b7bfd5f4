package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const flashCookie = "trackeo_flash"

// Toast is a one-shot notice rendered on the next page load. The layout
// animates it out after a few seconds; the cookie is cleared as soon as the
// toasts are drained, so a notice never shows twice.
type Toast struct {
	Level   string `json:"level"` // "success" | "error" | "info"
	Message string `json:"message"`
}

// Flash queues a toast for the next rendered page. Used by the POST-redirect
// handlers so the outcome survives the redirect.
func Flash(c echo.Context, level, message string) {
	toasts := readFlash(c)
	toasts = append(toasts, Toast{Level: level, Message: message})
	writeFlash(c, toasts)
}

// DrainFlash returns the queued toasts and clears the cookie.
func DrainFlash(c echo.Context) []Toast {
	toasts := readFlash(c)
	if len(toasts) > 0 {
		writeFlash(c, nil)
	}
	return toasts
}

func readFlash(c echo.Context) []Toast {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var toasts []Toast
	if err := json.Unmarshal(raw, &toasts); err != nil {
		return nil
	}
	return toasts
}

func writeFlash(c echo.Context, toasts []Toast) {
	cookie := &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if len(toasts) == 0 {
		cookie.MaxAge = -1
	} else {
		raw, err := json.Marshal(toasts)
		if err != nil {
			return
		}
		cookie.Value = base64.RawURLEncoding.EncodeToString(raw)
	}
	c.SetCookie(cookie)
}
