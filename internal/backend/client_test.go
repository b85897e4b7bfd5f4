package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zerolog.Nop())
}

func TestRequest_NoContentResolvesNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
		_, _ = w.Write([]byte("ignored trailing garbage"))
	})

	raw, err := c.request(context.Background(), "/events/", requestOptions{})
	if err != nil {
		t.Fatalf("request returned error: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil payload for 204, got %s", raw)
	}
}

func TestRequest_NonJSONSuccessBodyResolvesNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	raw, err := c.request(context.Background(), "/events/", requestOptions{})
	if err != nil {
		t.Fatalf("request returned error: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil payload for non-JSON body, got %s", raw)
	}
}

func TestRequest_ErrorCarriesStatusAndDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"email exists"}`))
	})

	_, err := c.RegisterAccount(context.Background(), ports.RegisterAccountInput{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Role:     "athlete",
		Password: "Pw123456",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiErr.Status)
	}
	if apiErr.Message != "email exists" {
		t.Fatalf("expected server detail as message, got %q", apiErr.Message)
	}
	if apiErr.Payload["detail"] != "email exists" {
		t.Fatalf("expected parsed payload, got %v", apiErr.Payload)
	}
}

func TestRequest_ErrorWithoutDetailUsesStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("plain text outage page"))
	})

	_, err := c.ListEvents(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", apiErr.Status)
	}
	if apiErr.Message != http.StatusText(http.StatusServiceUnavailable) {
		t.Fatalf("expected status text message, got %q", apiErr.Message)
	}
	if apiErr.Payload != nil {
		t.Fatalf("expected nil payload for non-JSON error body, got %v", apiErr.Payload)
	}
}

func TestListAccounts_DecodesAthletes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"full_name":"Jane Doe","email":"jane@example.com","role":"athlete"}]`))
	})

	athletes, err := c.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts returned error: %v", err)
	}
	if len(athletes) != 1 || athletes[0].FullName != "Jane Doe" || athletes[0].ID != 7 {
		t.Fatalf("unexpected athletes: %+v", athletes)
	}
}

func TestListAccounts_MalformedBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := c.ListAccounts(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form encoding, got %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		if r.PostFormValue("username") != "jane@example.com" || r.PostFormValue("password") != "Pw123456" {
			t.Errorf("unexpected credentials: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_at":"2026-01-01T00:00:00Z","subscription_tier":"coach"}`))
	})

	token, err := c.Login(context.Background(), "jane@example.com", "Pw123456")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token.Token != "tok-1" || token.Tier != "coach" {
		t.Fatalf("unexpected token: %+v", token)
	}
}

func TestListSubmissions_SendsAuthorizationHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := c.ListSubmissions(context.Background(), "Bearer tok-1"); err != nil {
		t.Fatalf("ListSubmissions returned error: %v", err)
	}
}

func TestAPIError_UnwrapsToDomainSentinels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"not allowed"}`))
	})

	_, err := c.ListSubmissions(context.Background(), "Bearer stale")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized via Is, got %v", err)
	}
	if errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatal("403 must not match the duplicate-email sentinel")
	}
}

func TestSubmissions_EmptyTokenNeverHitsTheWire(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	if _, err := c.ListSubmissions(context.Background(), ""); !errors.Is(err, domain.ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
	if _, err := c.CreateSubmission(context.Background(), "", ports.CreateSubmissionInput{}); !errors.Is(err, domain.ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
	if called {
		t.Fatal("request issued despite missing token")
	}
}

func TestRequest_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL, zerolog.Nop())

	_, err := c.ListEvents(context.Background())
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("network failure must not be an *APIError, got %+v", apiErr)
	}
}
