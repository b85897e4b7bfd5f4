package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// PagesHandler serves the collection pages (profiles, events, rosters) and
// the static about page. Each collection page refreshes its data on render
// and substitutes samples behind a toast when the backend is unreachable.
type PagesHandler struct {
	app *App
}

func NewPagesHandler(app *App) *PagesHandler {
	return &PagesHandler{app: app}
}

type profilesView struct {
	Athletes []domain.Athlete
	Filter   string
}

// Profiles handles GET /profiles with an optional ?q= substring filter over
// name and email.
func (h *PagesHandler) Profiles(c echo.Context) error {
	outcome := "loaded"
	var notices []Toast
	athletes, err := h.app.Catalog.LoadAthletes(c.Request().Context())
	if err != nil {
		outcome = "fallback"
		notices = append(notices, Toast{Level: "error", Message: fmt.Sprintf("Live athlete roster unavailable (%s). Showing sample data.", err)})
	}

	filter := strings.TrimSpace(c.QueryParam("q"))
	if filter != "" {
		needle := strings.ToLower(filter)
		kept := athletes[:0]
		for _, a := range athletes {
			if strings.Contains(strings.ToLower(a.FullName), needle) ||
				strings.Contains(strings.ToLower(a.Email), needle) {
				kept = append(kept, a)
			}
		}
		athletes = kept
	}

	view := h.app.view(c, "profiles")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = profilesView{Athletes: athletes, Filter: filter}

	metrics.PageRendersTotal.WithLabelValues("profiles", outcome).Inc()
	return c.Render(http.StatusOK, "profiles", view)
}

type eventsView struct {
	Events       []domain.Event
	OnlyUpcoming bool
}

// Events handles GET /events with the ?upcoming=1 toggle. An event with no
// start date never counts as upcoming.
func (h *PagesHandler) Events(c echo.Context) error {
	outcome := "loaded"
	var notices []Toast
	events, err := h.app.Catalog.LoadEvents(c.Request().Context())
	if err != nil {
		outcome = "fallback"
		notices = append(notices, Toast{Level: "error", Message: fmt.Sprintf("Live event calendar unavailable (%s). Showing sample data.", err)})
	}

	onlyUpcoming := c.QueryParam("upcoming") == "1"
	if onlyUpcoming {
		f := h.app.formatter(c)
		kept := events[:0]
		for _, e := range events {
			if f.IsFutureDate(e.StartDate) {
				kept = append(kept, e)
			}
		}
		events = kept
	}

	// Newest first; undated events sink to the bottom.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate > events[j].StartDate
	})

	view := h.app.view(c, "events")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = eventsView{Events: events, OnlyUpcoming: onlyUpcoming}

	metrics.PageRendersTotal.WithLabelValues("events", outcome).Inc()
	return c.Render(http.StatusOK, "events", view)
}

type rostersView struct {
	Rosters []domain.Roster
	Filter  string
}

// Rosters handles GET /rosters with an optional ?q= filter over club name
// and country.
func (h *PagesHandler) Rosters(c echo.Context) error {
	outcome := "loaded"
	var notices []Toast
	rosters, err := h.app.Catalog.LoadRosters(c.Request().Context())
	if err != nil {
		outcome = "fallback"
		notices = append(notices, Toast{Level: "error", Message: fmt.Sprintf("Live rosters unavailable (%s). Showing sample data.", err)})
	}

	filter := strings.TrimSpace(c.QueryParam("q"))
	if filter != "" {
		needle := strings.ToLower(filter)
		kept := rosters[:0]
		for _, r := range rosters {
			if strings.Contains(strings.ToLower(r.Name), needle) ||
				strings.Contains(strings.ToLower(r.Country), needle) {
				kept = append(kept, r)
			}
		}
		rosters = kept
	}

	view := h.app.view(c, "rosters")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = rostersView{Rosters: rosters, Filter: filter}

	metrics.PageRendersTotal.WithLabelValues("rosters", outcome).Inc()
	return c.Render(http.StatusOK, "rosters", view)
}

// About handles GET /about. Static copy, no data loading.
func (h *PagesHandler) About(c echo.Context) error {
	metrics.PageRendersTotal.WithLabelValues("about", "loaded").Inc()
	return c.Render(http.StatusOK, "about", h.app.view(c, "about"))
}
