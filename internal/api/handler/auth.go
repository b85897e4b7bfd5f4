package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/internal/backend"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
)

// AuthHandler serves the login and signup pages. A successful login stores
// the bearer token in the visitor's preferences; the expiry is kept alongside
// but never checked locally — the backend stays the authority.
type AuthHandler struct {
	app *App
}

func NewAuthHandler(app *App) *AuthHandler {
	return &AuthHandler{app: app}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	metrics.PageRendersTotal.WithLabelValues("login", "loaded").Inc()
	return c.Render(http.StatusOK, "login", h.app.view(c, "login"))
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		Flash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&form); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("login", "invalid").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, err := h.app.Gateway.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil || token == nil {
		metrics.FormSubmissionsTotal.WithLabelValues("login", "error").Inc()
		Flash(c, "error", loginErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	prefs := middleware.Prefs(c)
	prefs.Token = *token
	h.app.savePrefs(c, prefs)

	metrics.FormSubmissionsTotal.WithLabelValues("login", "success").Inc()
	Flash(c, "success", "Signed in successfully. Token stored for secure uploads.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout, dropping the stored token.
func (h *AuthHandler) Logout(c echo.Context) error {
	prefs := middleware.Prefs(c)
	prefs.Token = domain.AuthToken{}
	h.app.savePrefs(c, prefs)

	Flash(c, "info", "Signed out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	metrics.PageRendersTotal.WithLabelValues("signup", "loaded").Inc()
	return c.Render(http.StatusOK, "signup", h.app.view(c, "signup"))
}

type signupForm struct {
	FullName string `form:"full_name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Role     string `form:"role" validate:"required,oneof=athlete coach staff"`
	Password string `form:"password" validate:"required,min=8"`
}

// Signup handles POST /signup. A duplicate email maps to a fixed message
// rather than the backend's wording.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		Flash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	if err := c.Validate(&form); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("signup", "invalid").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	_, err := h.app.Gateway.RegisterAccount(c.Request().Context(), ports.RegisterAccountInput{
		FullName: form.FullName,
		Email:    form.Email,
		Role:     form.Role,
		Password: form.Password,
	})
	if err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("signup", "error").Inc()
		Flash(c, "error", registrationErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	metrics.FormSubmissionsTotal.WithLabelValues("signup", "success").Inc()
	Flash(c, "success", "Account created. Sign in to continue.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// registrationErrorMessage maps a 409 conflict to the canonical duplicate
// email wording; any other failure surfaces the backend message.
func registrationErrorMessage(err error) string {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return "This email is already registered."
	}
	return err.Error()
}

func loginErrorMessage(err error) string {
	if err == nil {
		return "Login failed."
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
