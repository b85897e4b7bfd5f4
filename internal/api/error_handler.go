package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/api/handler"
	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// ErrorPage is the model the error template renders.
type ErrorPage struct {
	Status  int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders a
// localized HTML error page. Unexpected errors are logged with their real
// cause and shown as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger, clock clockwork.Clock) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		view := handler.NewErrorView(c, middleware.Locale(c), clock)
		view.Data = ErrorPage{Status: code, Message: msg}
		if renderErr := c.Render(code, "error", view); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrTokenRequired):
		return http.StatusUnauthorized, "A bearer token is required to submit files."
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, "Token is invalid or lacks required permissions."
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "This email is already registered."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong on our side."
}
