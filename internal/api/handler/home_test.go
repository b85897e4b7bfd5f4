package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/backend"
	"github.com/trackeo/trackeo-web/internal/core/domain"
)

func TestLandingSubstitutesSamplesWhenBackendDown(t *testing.T) {
	gw := &stubGateway{err: errors.New("connection refused")}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	rec := invoke(t, app, h.Landing, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Aurora Indoor Classic",
		"Ramiro Lightfoot",
		"Showing sample data.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	// A failed fetch is an error notice, not an informational one.
	if !strings.Contains(body, `class="toast toast-error"`) {
		t.Errorf("fallback notice not rendered as an error toast")
	}
}

func TestLandingRendersLiveData(t *testing.T) {
	gw := &stubGateway{
		athletes: []domain.Athlete{{ID: 10, FullName: "Marta Vieira", Email: "marta@example.com", Role: "athlete"}},
		events:   []domain.Event{{ID: 20, Name: "Continental Cup", Location: "Lima"}},
	}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	rec := invoke(t, app, h.Landing, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Marta Vieira") || !strings.Contains(body, "Continental Cup") {
		t.Errorf("body missing live data")
	}
	if strings.Contains(body, "Showing sample data.") {
		t.Errorf("unexpected fallback notice with healthy backend")
	}
}

func TestLandingSearchFindsEvent(t *testing.T) {
	gw := &stubGateway{
		events: []domain.Event{{ID: 1, Name: "Aurora Indoor Classic", Location: "Oslo"}},
	}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	rec := invoke(t, app, h.Landing, httptest.NewRequest(http.MethodGet, "/?q=aurora&filter=events", nil))

	if !strings.Contains(rec.Body.String(), "Aurora Indoor Classic") {
		t.Errorf("search result missing from body")
	}
}

func TestRegisterAthleteRedirectsWithSuccessToast(t *testing.T) {
	gw := &stubGateway{}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	form := url.Values{
		"full_name": {"Jane Doe"},
		"email":     {"jane@example.com"},
		"role":      {"athlete"},
		"password":  {"supersecret"},
	}
	rec := invoke(t, app, h.RegisterAthlete, formRequest("/athletes", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
	if len(gw.registered) != 1 || gw.registered[0].Email != "jane@example.com" {
		t.Fatalf("gateway registrations = %+v", gw.registered)
	}
	if !hasToast(flashToasts(t, rec), "Athlete profile created for Jane Doe.") {
		t.Errorf("success toast missing")
	}
}

func TestRegisterAthleteRejectsBadEmail(t *testing.T) {
	gw := &stubGateway{}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	form := url.Values{
		"full_name": {"Jane Doe"},
		"email":     {"not-an-email"},
		"role":      {"athlete"},
		"password":  {"supersecret"},
	}
	rec := invoke(t, app, h.RegisterAthlete, formRequest("/athletes", form))

	if len(gw.registered) != 0 {
		t.Fatalf("backend called despite invalid form")
	}
	if !hasToast(flashToasts(t, rec), "email must be a valid email") {
		t.Errorf("validation toast missing")
	}
}

func TestCreateEventDuplicateSurfacesBackendMessage(t *testing.T) {
	gw := &stubGateway{err: &backend.APIError{Status: http.StatusBadRequest, Message: "event dates overlap"}}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	form := url.Values{
		"name":       {"Continental Cup"},
		"location":   {"Lima"},
		"start_date": {"2026-10-01"},
		"end_date":   {"2026-10-03"},
	}
	rec := invoke(t, app, h.CreateEvent, formRequest("/events", form))

	if !hasToast(flashToasts(t, rec), "event dates overlap") {
		t.Errorf("backend error toast missing")
	}
}

func TestCreateEventBindsOptionalFederation(t *testing.T) {
	gw := &stubGateway{}
	app := newTestApp(t, gw)
	h := NewHomeHandler(app)

	form := url.Values{
		"name":          {"Continental Cup"},
		"location":      {"Lima"},
		"federation_id": {"3"},
	}
	invoke(t, app, h.CreateEvent, formRequest("/events", form))

	if len(gw.createdEvents) != 1 {
		t.Fatalf("events created = %d, want 1", len(gw.createdEvents))
	}
	if got := gw.createdEvents[0].FederationID; got == nil || *got != 3 {
		t.Errorf("FederationID = %v, want 3", got)
	}

	// Absent or junk values stay nil rather than failing the form.
	form.Set("federation_id", "")
	invoke(t, app, h.CreateEvent, formRequest("/events", form))
	form.Set("federation_id", "not-a-number")
	invoke(t, app, h.CreateEvent, formRequest("/events", form))
	if len(gw.createdEvents) != 3 {
		t.Fatalf("events created = %d, want 3", len(gw.createdEvents))
	}
	if gw.createdEvents[1].FederationID != nil || gw.createdEvents[2].FederationID != nil {
		t.Errorf("empty or invalid federation_id must bind as nil")
	}
}

func TestSeedAthletesFlashesOutcome(t *testing.T) {
	app := newTestApp(t, &stubGateway{})
	h := NewHomeHandler(app)

	rec := invoke(t, app, h.SeedAthletes, formRequest("/athletes/seed", url.Values{}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if !hasToast(flashToasts(t, rec), "Sample athletes loaded.") {
		t.Errorf("seed toast missing")
	}
}

func TestSubscribeSuccess(t *testing.T) {
	app := newTestApp(t, &stubGateway{})
	h := NewHomeHandler(app)

	rec := invoke(t, app, h.Subscribe, formRequest("/subscribe", url.Values{"email": {"fan@example.com"}}))

	if !hasToast(flashToasts(t, rec), "Subscribed. Watch your inbox for Trackeo Insights.") {
		t.Errorf("subscribe toast missing")
	}
}
