package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trackeo/trackeo-web/internal/core/ports"
)

type stubVault struct {
	prefs map[string]ports.Preferences
}

func (v *stubVault) Load(_ context.Context, id string) ports.Preferences { return v.prefs[id] }
func (v *stubVault) Save(_ context.Context, id string, p ports.Preferences) {
	v.prefs[id] = p
}

func TestVisitor_AssignsCookieOnFirstVisit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Visitor(&stubVault{prefs: map[string]ports.Preferences{}})
	err := mw(func(c echo.Context) error {
		if VisitorID(c) == "" {
			t.Error("visitor id missing from context")
		}
		if Locale(c) != "en" {
			t.Errorf("default locale = %q", Locale(c))
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "trackeo_visitor" || cookies[0].Value == "" {
		t.Fatalf("expected a visitor cookie, got %+v", cookies)
	}
}

func TestVisitor_LoadsStoredPreferences(t *testing.T) {
	vault := &stubVault{prefs: map[string]ports.Preferences{
		"vis-1": {Locale: "pt"},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "trackeo_visitor", Value: "vis-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Visitor(vault)(func(c echo.Context) error {
		if VisitorID(c) != "vis-1" {
			t.Errorf("visitor id = %q", VisitorID(c))
		}
		if Locale(c) != "pt" {
			t.Errorf("locale = %q", Locale(c))
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("existing visitors must not get a new cookie")
	}
}

func TestVisitor_UnsupportedLocaleResolvesToEnglish(t *testing.T) {
	vault := &stubVault{prefs: map[string]ports.Preferences{
		"vis-2": {Locale: "de"},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "trackeo_visitor", Value: "vis-2"})
	c := e.NewContext(req, httptest.NewRecorder())

	_ = Visitor(vault)(func(c echo.Context) error {
		if Locale(c) != "en" {
			t.Errorf("locale = %q", Locale(c))
		}
		return nil
	})(c)
}
