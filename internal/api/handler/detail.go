package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/service"
)

// DetailHandler serves the event, athlete, and roster detail pages.
type DetailHandler struct {
	app *App
}

func NewDetailHandler(app *App) *DetailHandler {
	return &DetailHandler{app: app}
}

// disciplineView pairs a discipline with its pre-formatted schedule label so
// the template needs no formatter access.
type disciplineView struct {
	domain.Discipline
	TimeLabel string
}

// sessionGroup is one session block of the event schedule with its
// disciplines in running order.
type sessionGroup struct {
	Session     domain.Session
	TimeLabel   string
	Disciplines []disciplineView
}

type eventDetailView struct {
	Detail      *domain.EventDetail
	Status      string
	LiveCount   int
	Sessions    []sessionGroup
	Unscheduled []disciplineView
}

// Event handles GET /events/:id. On a failed fetch a fabricated demo
// schedule stands in, flagged by a toast.
func (h *DetailHandler) Event(c echo.Context) error {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown event")
	}

	outcome := "loaded"
	var notices []Toast
	detail, err := h.app.Catalog.LoadEventDetail(c.Request().Context(), eventID)
	if err != nil {
		outcome = "fallback"
		notices = append(notices, Toast{Level: "error", Message: fmt.Sprintf("Live scoreboard unavailable (%s). Showing demo data.", err)})
	}

	view := h.app.view(c, "event_detail")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = buildEventDetailView(detail, h.app.formatter(c))

	metrics.PageRendersTotal.WithLabelValues("event_detail", outcome).Inc()
	return c.Render(http.StatusOK, "event_detail", view)
}

// buildEventDetailView groups disciplines under their sessions, ordered by
// running order. Disciplines without a session land in Unscheduled.
func buildEventDetailView(detail *domain.EventDetail, f *service.Formatter) eventDetailView {
	disciplines := append([]domain.Discipline(nil), detail.Disciplines...)
	sort.SliceStable(disciplines, func(i, j int) bool {
		return disciplines[i].Order < disciplines[j].Order
	})

	bySession := make(map[int64][]disciplineView)
	var unscheduled []disciplineView
	for _, d := range disciplines {
		dv := disciplineView{Discipline: d, TimeLabel: f.TimeRange(d.ScheduledStart, d.ScheduledEnd)}
		if d.SessionID == nil {
			unscheduled = append(unscheduled, dv)
			continue
		}
		bySession[*d.SessionID] = append(bySession[*d.SessionID], dv)
	}

	groups := make([]sessionGroup, 0, len(detail.Sessions))
	for _, s := range detail.Sessions {
		groups = append(groups, sessionGroup{
			Session:     s,
			TimeLabel:   f.TimeRange(s.StartTime, s.EndTime),
			Disciplines: bySession[s.ID],
		})
	}

	return eventDetailView{
		Detail:      detail,
		Status:      detail.SummaryStatus(),
		LiveCount:   detail.LiveSessionCount(),
		Sessions:    groups,
		Unscheduled: unscheduled,
	}
}

// SeedEventDemo handles POST /events/:id/demo, asking the backend to
// fabricate sessions and live results for the event.
func (h *DetailHandler) SeedEventDemo(c echo.Context) error {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown event")
	}

	target := fmt.Sprintf("/events/%d", eventID)
	if err := h.app.Gateway.SeedEventDemo(c.Request().Context(), eventID); err != nil {
		Flash(c, "error", fmt.Sprintf("Could not seed demo data (%s).", err))
		return c.Redirect(http.StatusSeeOther, target)
	}

	Flash(c, "success", "Demo sessions and results seeded.")
	return c.Redirect(http.StatusSeeOther, target)
}

type athleteDetailView struct {
	Athlete *domain.AthleteDetail
}

// Athlete handles GET /athletes/:id. When the backend is unreachable, the
// page degrades to whatever the store knows about the athlete.
func (h *DetailHandler) Athlete(c echo.Context) error {
	athleteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown athlete")
	}

	outcome := "loaded"
	var notices []Toast
	detail, err := h.app.Gateway.GetAthleteDetail(c.Request().Context(), athleteID)
	if err != nil || detail == nil {
		outcome = "fallback"
		detail = h.storedAthlete(athleteID)
		if detail == nil {
			return echo.NewHTTPError(http.StatusNotFound, "unknown athlete")
		}
		notices = append(notices, Toast{Level: "error", Message: "Live profile unavailable. Showing cached data."})
	}

	view := h.app.view(c, "athlete_detail")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = athleteDetailView{Athlete: detail}

	metrics.PageRendersTotal.WithLabelValues("athlete_detail", outcome).Inc()
	return c.Render(http.StatusOK, "athlete_detail", view)
}

func (h *DetailHandler) storedAthlete(athleteID int64) *domain.AthleteDetail {
	for _, a := range h.app.Catalog.Store().Athletes() {
		if a.ID == athleteID {
			return &domain.AthleteDetail{
				ID:       a.ID,
				FullName: a.FullName,
				Email:    a.Email,
				Role:     a.Role,
			}
		}
	}
	return nil
}

type rosterDetailView struct {
	Roster *domain.Roster
}

// Roster handles GET /rosters/:id with the same degrade-to-store behaviour
// as the athlete page.
func (h *DetailHandler) Roster(c echo.Context) error {
	rosterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown roster")
	}

	outcome := "loaded"
	var notices []Toast
	roster, err := h.app.Gateway.GetRosterDetail(c.Request().Context(), rosterID)
	if err != nil || roster == nil {
		outcome = "fallback"
		roster = h.storedRoster(rosterID)
		if roster == nil {
			return echo.NewHTTPError(http.StatusNotFound, "unknown roster")
		}
		notices = append(notices, Toast{Level: "error", Message: "Live roster unavailable. Showing cached data."})
	}

	view := h.app.view(c, "roster_detail")
	view.Toasts = append(view.Toasts, notices...)
	view.Data = rosterDetailView{Roster: roster}

	metrics.PageRendersTotal.WithLabelValues("roster_detail", outcome).Inc()
	return c.Render(http.StatusOK, "roster_detail", view)
}

func (h *DetailHandler) storedRoster(rosterID int64) *domain.Roster {
	for _, r := range h.app.Catalog.Store().Rosters() {
		if r.ID == rosterID {
			roster := r
			return &roster
		}
	}
	return nil
}
