package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
	"github.com/trackeo/trackeo-web/internal/core/service"
)

// HomeHandler renders the landing page and owns its form actions: athlete
// registration, event creation, the two seed buttons, and the newsletter
// signup. Every POST follows post-redirect-get back to /.
type HomeHandler struct {
	app *App
}

func NewHomeHandler(app *App) *HomeHandler {
	return &HomeHandler{app: app}
}

// homeView is the page model for the landing template.
type homeView struct {
	Athletes    []domain.Athlete
	Events      []domain.Event
	Rosters     []domain.Roster
	News        []domain.NewsArticle
	Federations []domain.Federation
	Results     []domain.RecentResult

	SearchResults []domain.SearchResult
	Searched      bool
}

// Landing handles GET /. The athlete and event collections refresh on every
// render; a failed fetch substitutes samples and reports via toast instead of
// blanking the section.
func (h *HomeHandler) Landing(c echo.Context) error {
	ctx := c.Request().Context()
	outcome := "loaded"

	// Fallback notices render on this page load, so they go straight to the
	// view rather than through the flash cookie.
	var notices []Toast
	if _, err := h.app.Catalog.LoadAthletes(ctx); err != nil {
		outcome = "fallback"
		notices = append(notices, Toast{Level: "error", Message: fmt.Sprintf("Live athlete roster unavailable (%s). Showing sample data.", err)})
	}
	if _, err := h.app.Catalog.LoadEvents(ctx); err != nil {
		outcome = "fallback"
		notices = append(notices, Toast{Level: "error", Message: fmt.Sprintf("Live event calendar unavailable (%s). Showing sample data.", err)})
	}

	query := c.QueryParam("q")
	filter := c.QueryParam("filter")
	if filter == "" {
		filter = domain.FilterAll
	}

	snap := h.app.Catalog.Store().Snapshot()
	var results []domain.SearchResult
	searched := query != "" || c.QueryParams().Has("q")
	if searched {
		metrics.SearchQueriesTotal.WithLabelValues(filter).Inc()
		results = service.CollectSearchResults(snap, h.app.formatter(c), query, filter)
	}

	view := h.app.view(c, "home")
	view.Toasts = append(view.Toasts, notices...)
	view.Query = query
	view.Filter = filter
	view.Data = homeView{
		Athletes:      snap.Athletes,
		Events:        snap.Events,
		Rosters:       snap.Rosters,
		News:          snap.News,
		Federations:   snap.Federations,
		Results:       snap.Results,
		SearchResults: results,
		Searched:      searched,
	}

	metrics.PageRendersTotal.WithLabelValues("home", outcome).Inc()
	return c.Render(http.StatusOK, "home", view)
}

type registerForm struct {
	FullName string `form:"full_name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Role     string `form:"role" validate:"required,oneof=athlete coach staff"`
	Password string `form:"password" validate:"required,min=8"`
}

// RegisterAthlete handles POST /athletes from the landing form.
func (h *HomeHandler) RegisterAthlete(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		Flash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&form); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("register_athlete", "invalid").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	_, err := h.app.Gateway.RegisterAccount(c.Request().Context(), ports.RegisterAccountInput{
		FullName: form.FullName,
		Email:    form.Email,
		Role:     form.Role,
		Password: form.Password,
	})
	if err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("register_athlete", "error").Inc()
		Flash(c, "error", registrationErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/")
	}

	metrics.FormSubmissionsTotal.WithLabelValues("register_athlete", "success").Inc()
	Flash(c, "success", fmt.Sprintf("Athlete profile created for %s.", form.FullName))
	return c.Redirect(http.StatusSeeOther, "/")
}

type eventForm struct {
	Name         string `form:"name" validate:"required"`
	Location     string `form:"location" validate:"required"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	FederationID string `form:"federation_id"`
}

// federationID parses the optional numeric field; anything unparseable
// counts as absent, like the original form did.
func (f eventForm) federationID() *int64 {
	v := strings.TrimSpace(f.FederationID)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// CreateEvent handles POST /events from the landing form.
func (h *HomeHandler) CreateEvent(c echo.Context) error {
	var form eventForm
	if err := c.Bind(&form); err != nil {
		Flash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&form); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("create_event", "invalid").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	_, err := h.app.Gateway.CreateEvent(c.Request().Context(), ports.CreateEventInput{
		Name:         form.Name,
		Location:     form.Location,
		StartDate:    form.StartDate,
		EndDate:      form.EndDate,
		FederationID: form.federationID(),
	})
	if err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("create_event", "error").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	metrics.FormSubmissionsTotal.WithLabelValues("create_event", "success").Inc()
	Flash(c, "success", fmt.Sprintf("Event %q scheduled.", form.Name))
	return c.Redirect(http.StatusSeeOther, "/")
}

// SeedAthletes handles POST /athletes/seed.
func (h *HomeHandler) SeedAthletes(c echo.Context) error {
	if _, err := h.app.Catalog.SeedAthletes(c.Request().Context()); err != nil {
		Flash(c, "error", fmt.Sprintf("Could not reload sample athletes (%s).", err))
	} else {
		Flash(c, "success", "Sample athletes loaded.")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// SeedEvents handles POST /events/seed.
func (h *HomeHandler) SeedEvents(c echo.Context) error {
	if _, err := h.app.Catalog.SeedEvents(c.Request().Context()); err != nil {
		Flash(c, "error", fmt.Sprintf("Could not reload sample events (%s).", err))
	} else {
		Flash(c, "success", "Sample events loaded.")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

type subscribeForm struct {
	Email string `form:"email" validate:"required,email"`
}

// Subscribe handles POST /subscribe from the newsletter box.
func (h *HomeHandler) Subscribe(c echo.Context) error {
	var form subscribeForm
	if err := c.Bind(&form); err != nil {
		Flash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&form); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("subscribe", "invalid").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.app.Gateway.Subscribe(c.Request().Context(), form.Email); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues("subscribe", "error").Inc()
		Flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	metrics.FormSubmissionsTotal.WithLabelValues("subscribe", "success").Inc()
	Flash(c, "success", "Subscribed. Watch your inbox for Trackeo Insights.")
	return c.Redirect(http.StatusSeeOther, "/")
}
