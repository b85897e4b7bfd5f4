package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/internal/backend"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
)

// How long a manually pasted token is considered worth keeping around.
const manualTokenTTL = time.Hour

// FederationsHandler serves the secure upload page. Both listing and
// creating submissions need a bearer token; without one the backend is never
// contacted.
type FederationsHandler struct {
	app *App
}

func NewFederationsHandler(app *App) *FederationsHandler {
	return &FederationsHandler{app: app}
}

type federationsView struct {
	Federations []domain.Federation
	Submissions []domain.Submission
	HasToken    bool
}

// Page handles GET /federations. The submission history loads only when a
// token is on file; listing failures degrade to an empty history behind a
// toast.
func (h *FederationsHandler) Page(c echo.Context) error {
	outcome := "loaded"
	token := normalizeToken(middleware.Prefs(c).Token.Token)

	var notices []Toast
	var submissions []domain.Submission
	if token != "" {
		var err error
		submissions, err = h.app.Gateway.ListSubmissions(c.Request().Context(), token)
		if err != nil {
			outcome = "fallback"
			notices = append(notices, Toast{Level: "error", Message: tokenErrorMessage(err)})
		}
	}
	// Newest first, matching the backend's submitted_at timestamps.
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt > submissions[j].SubmittedAt
	})

	view := h.app.view(c, "federations")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = federationsView{
		Federations: h.app.Catalog.Store().Federations(),
		Submissions: submissions,
		HasToken:    token != "",
	}

	metrics.PageRendersTotal.WithLabelValues("federations", outcome).Inc()
	return c.Render(http.StatusOK, "federations", view)
}

type submissionForm struct {
	Token          string `form:"token"`
	FederationName string `form:"federation_name" validate:"required"`
	PayloadURL     string `form:"payload_url" validate:"required,url"`
	Notes          string `form:"notes"`
}

// Submit handles POST /federations/submissions. A missing token short-
// circuits before any backend call.
func (h *FederationsHandler) Submit(c echo.Context) error {
	var form submissionForm
	if err := c.Bind(&form); err != nil {
		Flash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/federations")
	}

	prefs := middleware.Prefs(c)
	manual := strings.TrimSpace(form.Token) != ""
	raw := form.Token
	if !manual {
		raw = prefs.Token.Token
	}

	token := normalizeToken(raw)
	if token == "" {
		metrics.FormSubmissionsTotal.WithLabelValues("federation_upload", "blocked").Inc()
		Flash(c, "error", "A bearer token is required to submit files.")
		return c.Redirect(http.StatusSeeOther, "/federations")
	}

	if err := c.Validate(&form); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("federation_upload", "invalid").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/federations")
	}

	_, err := h.app.Gateway.CreateSubmission(c.Request().Context(), token, ports.CreateSubmissionInput{
		FederationName: form.FederationName,
		PayloadURL:     form.PayloadURL,
		Notes:          form.Notes,
	})
	if err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("federation_upload", "error").Inc()
		Flash(c, "error", tokenErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/federations")
	}

	if manual {
		// Keep a pasted token for the next upload, with a short shelf life.
		prefs.Token = domain.AuthToken{
			Token:     strings.TrimPrefix(token, "Bearer "),
			ExpiresAt: h.app.Clock.Now().UTC().Add(manualTokenTTL).Format(time.RFC3339),
			Tier:      prefs.Token.Tier,
		}
		h.app.savePrefs(c, prefs)
	}

	metrics.FormSubmissionsTotal.WithLabelValues("federation_upload", "success").Inc()
	Flash(c, "success", "Submission queued for processing.")
	return c.Redirect(http.StatusSeeOther, "/federations")
}

// normalizeToken trims whitespace and guarantees the "Bearer " scheme prefix
// on any non-empty token.
func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return "Bearer " + token
	}
	return token
}

// tokenErrorMessage maps 401/403 to the canonical invalid-token wording.
func tokenErrorMessage(err error) string {
	if errors.Is(err, domain.ErrUnauthorized) {
		return "Token is invalid or lacks required permissions."
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
