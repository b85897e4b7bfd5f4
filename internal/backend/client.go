// Package backend is the HTTP client for the Trackeo REST API. It owns the
// uniform request semantics (JSON headers, error translation, 204 handling)
// and the typed endpoint wrappers that decode responses into domain DTOs at
// the client boundary.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// APIError is any non-2xx backend response. Status carries the HTTP code and
// Payload the parsed JSON error body, or nil when the body was not JSON.
type APIError struct {
	Status  int
	Payload map[string]any
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap maps auth and conflict statuses to their domain sentinels so callers
// can branch with errors.Is without reaching for the HTTP code.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusConflict:
		return domain.ErrDuplicateEmail
	}
	return nil
}

// AsAPIError unwraps err into an *APIError when the failure carried an HTTP
// response, letting callers branch on the status code.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// DecodeError marks a 2xx response whose non-empty body failed to decode
// into the expected DTO shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("backend: decoding %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client performs single-attempt calls against a fixed API root. There is no
// retry, timeout, or cancellation beyond what the caller's context carries.
type Client struct {
	root   string
	http   *http.Client
	logger zerolog.Logger
}

// New returns a Client for the given API root, e.g.
// "http://backend:8000/api/v1".
func New(root string, logger zerolog.Logger) *Client {
	return &Client{
		root:   root,
		http:   &http.Client{},
		logger: logger,
	}
}

// requestOptions mirrors the caller-adjustable parts of a call: extra headers
// are merged over the default JSON content type.
type requestOptions struct {
	method  string
	body    io.Reader
	headers map[string]string
}

// request issues the call and applies the uniform response contract:
//   - 2xx with status 204 resolves to a nil payload
//   - 2xx with an unparsable body resolves to a nil payload rather than failing
//   - non-2xx raises *APIError with the status, the parsed error body, and a
//     message taken from the server "detail" field, else the HTTP status
//     text, else a generic fallback
func (c *Client) request(ctx context.Context, path string, opts requestOptions) (json.RawMessage, error) {
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, c.root+path, opts.body)
	if err != nil {
		return nil, fmt.Errorf("backend: building %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(method, "network_error").Inc()
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFrom(resp, method, path)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		// Defensive: a 2xx with a non-JSON body counts as an empty success.
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

func (c *Client) errorFrom(resp *http.Response, method, path string) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, _ := io.ReadAll(resp.Body)
	if len(body) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err == nil {
			apiErr.Payload = payload
		}
	}

	if detail, ok := apiErr.Payload["detail"].(string); ok && detail != "" {
		apiErr.Message = detail
	} else if text := http.StatusText(resp.StatusCode); text != "" {
		apiErr.Message = text
	} else {
		apiErr.Message = "Request failed"
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Msg("backend request failed")

	return apiErr
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// decode unmarshals a non-nil raw payload into T.
func decode[T any](raw json.RawMessage, path string) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodeError{Path: path, Err: err}
	}
	return out, nil
}

// get decodes a GET response into out. A nil payload (204 or empty body)
// leaves out at its zero value.
func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	raw, err := c.request(ctx, path, requestOptions{})
	if err != nil || raw == nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodeError{Path: path, Err: err}
	}
	return out, nil
}

// post marshals in, issues the POST, and decodes the response into out.
func post[T any](ctx context.Context, c *Client, path string, in any, headers map[string]string) (T, error) {
	var out T
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return out, fmt.Errorf("backend: encoding %s payload: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}
	raw, err := c.request(ctx, path, requestOptions{
		method:  http.MethodPost,
		body:    body,
		headers: headers,
	})
	if err != nil || raw == nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodeError{Path: path, Err: err}
	}
	return out, nil
}
