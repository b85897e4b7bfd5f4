package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/api/middleware"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
	"github.com/trackeo/trackeo-web/internal/core/service"
	"github.com/trackeo/trackeo-web/internal/infrastructure/vault"
	"github.com/trackeo/trackeo-web/web"
)

// stubGateway is the programmable backend double shared by the handler tests.
type stubGateway struct {
	athletes []domain.Athlete
	events   []domain.Event
	rosters  []domain.Roster
	detail   *domain.EventDetail
	token    *domain.AuthToken
	err      error

	registered    []ports.RegisterAccountInput
	createdEvents []ports.CreateEventInput
	submissions   []ports.CreateSubmissionInput
	submitToken   string
}

func (g *stubGateway) ListAccounts(context.Context) ([]domain.Athlete, error) {
	return g.athletes, g.err
}

func (g *stubGateway) RegisterAccount(_ context.Context, in ports.RegisterAccountInput) (*domain.Athlete, error) {
	g.registered = append(g.registered, in)
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Athlete{ID: 1, FullName: in.FullName, Email: in.Email, Role: in.Role}, nil
}

func (g *stubGateway) Login(context.Context, string, string) (*domain.AuthToken, error) {
	return g.token, g.err
}

func (g *stubGateway) ListEvents(context.Context) ([]domain.Event, error) {
	return g.events, g.err
}

func (g *stubGateway) CreateEvent(_ context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	g.createdEvents = append(g.createdEvents, in)
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Event{ID: 1, Name: in.Name, Location: in.Location}, nil
}

func (g *stubGateway) GetEventDetail(context.Context, int64) (*domain.EventDetail, error) {
	return g.detail, g.err
}

func (g *stubGateway) SeedEventDemo(context.Context, int64) error { return g.err }

func (g *stubGateway) GetAthleteDetail(context.Context, int64) (*domain.AthleteDetail, error) {
	return nil, g.err
}

func (g *stubGateway) ListRosters(context.Context) ([]domain.Roster, error) {
	return g.rosters, g.err
}

func (g *stubGateway) GetRosterDetail(context.Context, int64) (*domain.Roster, error) {
	return nil, g.err
}

func (g *stubGateway) ListSubmissions(context.Context, string) ([]domain.Submission, error) {
	return nil, g.err
}

func (g *stubGateway) CreateSubmission(_ context.Context, token string, in ports.CreateSubmissionInput) (*domain.Submission, error) {
	g.submitToken = token
	g.submissions = append(g.submissions, in)
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Submission{ID: 1, FederationName: in.FederationName, PayloadURL: in.PayloadURL, Status: "queued"}, nil
}

func (g *stubGateway) Subscribe(context.Context, string) error { return g.err }

func newTestApp(t *testing.T, gw ports.BackendGateway) *App {
	t.Helper()
	clock := clockwork.NewFakeClock()
	return &App{
		Catalog: service.NewCatalogService(gw, service.NewStore(), clock, zerolog.Nop()),
		Gateway: gw,
		Vault:   vault.NewMemoryVault(),
		Clock:   clock,
		Logger:  zerolog.Nop(),
	}
}

func newContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	renderer, err := NewRenderer(web.FS)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.Validator = NewValidator()

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// invoke runs a handler through the visitor middleware against a fresh echo
// instance with the real renderer and validator wired.
func invoke(t *testing.T, app *App, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	c, rec := newContext(t, req)
	if err := middleware.Visitor(app.Vault)(h)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

// invokeParam is invoke with a single path parameter bound, for the :id routes.
func invokeParam(t *testing.T, app *App, h echo.HandlerFunc, req *http.Request, name, value string) *httptest.ResponseRecorder {
	t.Helper()
	c, rec := newContext(t, req)
	c.SetParamNames(name)
	c.SetParamValues(value)
	if err := middleware.Visitor(app.Vault)(h)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// flashToasts decodes the flash cookie a redirect left behind.
func flashToasts(t *testing.T, rec *httptest.ResponseRecorder) []Toast {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != "trackeo_flash" || cookie.Value == "" {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		if err != nil {
			t.Fatalf("flash cookie decode: %v", err)
		}
		var toasts []Toast
		if err := json.Unmarshal(raw, &toasts); err != nil {
			t.Fatalf("flash cookie unmarshal: %v", err)
		}
		return toasts
	}
	return nil
}

func hasToast(toasts []Toast, message string) bool {
	for _, toast := range toasts {
		if toast.Message == message {
			return true
		}
	}
	return false
}

// visitorWithPrefs pre-seeds the vault and returns the cookie to send.
func visitorWithPrefs(app *App, prefs ports.Preferences) *http.Cookie {
	app.Vault.Save(context.Background(), "vis-test", prefs)
	return &http.Cookie{Name: "trackeo_visitor", Value: "vis-test"}
}
