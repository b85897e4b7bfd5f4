package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
)

func TestProfilesFiltersByNameAndEmail(t *testing.T) {
	gw := &stubGateway{athletes: []domain.Athlete{
		{ID: 1, FullName: "Marta Vieira", Email: "marta@example.com", Role: "athlete"},
		{ID: 2, FullName: "Liam O'Connor", Email: "liam@example.com", Role: "coach"},
	}}
	app := newTestApp(t, gw)
	h := NewPagesHandler(app)

	rec := invoke(t, app, h.Profiles, httptest.NewRequest(http.MethodGet, "/profiles?q=marta", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Marta Vieira") {
		t.Errorf("filtered athlete missing")
	}
	if strings.Contains(body, "Liam O&#39;Connor") || strings.Contains(body, "liam@example.com") {
		t.Errorf("filter leaked non-matching athlete")
	}
}

func TestEventsUpcomingToggleDropsPastEvents(t *testing.T) {
	gw := &stubGateway{events: []domain.Event{
		{ID: 1, Name: "Legacy Meet", Location: "Quito", StartDate: "1970-06-01"},
		{ID: 2, Name: "Future Cup", Location: "Lima", StartDate: "2999-05-01"},
	}}
	app := newTestApp(t, gw)
	h := NewPagesHandler(app)

	rec := invoke(t, app, h.Events, httptest.NewRequest(http.MethodGet, "/events?upcoming=1", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Future Cup") {
		t.Errorf("upcoming event missing")
	}
	if strings.Contains(body, "Legacy Meet") {
		t.Errorf("past event shown despite upcoming toggle")
	}
}

func TestEventsSortedNewestFirst(t *testing.T) {
	gw := &stubGateway{events: []domain.Event{
		{ID: 1, Name: "Opening Meet", Location: "Quito", StartDate: "2026-01-10"},
		{ID: 2, Name: "Season Finale", Location: "Lima", StartDate: "2026-11-20"},
	}}
	app := newTestApp(t, gw)
	h := NewPagesHandler(app)

	rec := invoke(t, app, h.Events, httptest.NewRequest(http.MethodGet, "/events", nil))

	body := rec.Body.String()
	finale := strings.Index(body, "Season Finale")
	opening := strings.Index(body, "Opening Meet")
	if finale == -1 || opening == -1 || finale > opening {
		t.Errorf("events not sorted newest first (finale at %d, opening at %d)", finale, opening)
	}
}

func TestRostersFallbackShowsSampleClubs(t *testing.T) {
	gw := &stubGateway{err: errors.New("connection refused")}
	app := newTestApp(t, gw)
	h := NewPagesHandler(app)

	rec := invoke(t, app, h.Rosters, httptest.NewRequest(http.MethodGet, "/rosters", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Club Andino Quito") {
		t.Errorf("sample roster missing from fallback render")
	}
	if !strings.Contains(body, `class="toast toast-error"`) {
		t.Errorf("fallback notice not rendered as an error toast")
	}
}

func TestAboutRendersLocalizedCopy(t *testing.T) {
	app := newTestApp(t, &stubGateway{})
	h := NewPagesHandler(app)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.AddCookie(visitorWithPrefs(app, ports.Preferences{Locale: "pt"}))

	rec := invoke(t, app, h.About, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `lang="pt"`) {
		t.Errorf("page not rendered in stored locale")
	}
}

func TestLocaleSetPersistsAndRedirectsBack(t *testing.T) {
	app := newTestApp(t, &stubGateway{})
	h := NewLocaleHandler(app)

	req := formRequest("/locale", url.Values{"locale": {"es"}})
	req.Header.Set("Referer", "/events?upcoming=1")
	req.AddCookie(visitorWithPrefs(app, ports.Preferences{Locale: "en"}))

	rec := invoke(t, app, h.Set, req)

	if loc := rec.Header().Get("Location"); loc != "/events?upcoming=1" {
		t.Errorf("redirect = %q, want the referring page", loc)
	}
	if prefs := app.Vault.Load(context.Background(), "vis-test"); prefs.Locale != "es" {
		t.Errorf("stored locale = %q, want es", prefs.Locale)
	}
}

func TestLocaleSetIgnoresForeignReferer(t *testing.T) {
	app := newTestApp(t, &stubGateway{})
	h := NewLocaleHandler(app)

	for _, ref := range []string{
		"https://evil.example.com/phish",
		"//evil.example.com/phish",
	} {
		req := formRequest("/locale", url.Values{"locale": {"pt"}})
		req.Header.Set("Referer", ref)

		rec := invoke(t, app, h.Set, req)

		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("Referer %q: redirect = %q, want /", ref, loc)
		}
	}
}
