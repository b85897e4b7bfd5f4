package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
)

// Compile-time check that Client satisfies the gateway port.
var _ ports.BackendGateway = (*Client)(nil)

func (c *Client) ListAccounts(ctx context.Context) ([]domain.Athlete, error) {
	return get[[]domain.Athlete](ctx, c, "/accounts/")
}

func (c *Client) RegisterAccount(ctx context.Context, in ports.RegisterAccountInput) (*domain.Athlete, error) {
	return post[*domain.Athlete](ctx, c, "/accounts/register", in, nil)
}

// Login is the one endpoint the backend expects form-encoded rather than as
// JSON.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	raw, err := c.request(ctx, "/accounts/login", requestOptions{
		method:  http.MethodPost,
		body:    strings.NewReader(form.Encode()),
		headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	})
	if err != nil || raw == nil {
		return nil, err
	}
	return decode[*domain.AuthToken](raw, "/accounts/login")
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return get[[]domain.Event](ctx, c, "/events/")
}

func (c *Client) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	return post[*domain.Event](ctx, c, "/events/", in, nil)
}

func (c *Client) GetEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, error) {
	return get[*domain.EventDetail](ctx, c, fmt.Sprintf("/events/%d", eventID))
}

type seedDemoInput struct {
	StartTime      string `json:"start_time"`
	IncludeResults bool   `json:"include_results"`
}

func (c *Client) SeedEventDemo(ctx context.Context, eventID int64) error {
	_, err := post[map[string]any](ctx, c, fmt.Sprintf("/events/%d/demo", eventID), seedDemoInput{
		StartTime:      nowRFC3339(),
		IncludeResults: true,
	}, nil)
	return err
}

func (c *Client) GetAthleteDetail(ctx context.Context, athleteID int64) (*domain.AthleteDetail, error) {
	return get[*domain.AthleteDetail](ctx, c, fmt.Sprintf("/athletes/%d", athleteID))
}

func (c *Client) ListRosters(ctx context.Context) ([]domain.Roster, error) {
	return get[[]domain.Roster](ctx, c, "/rosters/")
}

func (c *Client) GetRosterDetail(ctx context.Context, rosterID int64) (*domain.Roster, error) {
	return get[*domain.Roster](ctx, c, fmt.Sprintf("/rosters/%d", rosterID))
}

func (c *Client) ListSubmissions(ctx context.Context, token string) ([]domain.Submission, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	var out []domain.Submission
	raw, err := c.request(ctx, "/federations/submissions", requestOptions{
		headers: map[string]string{"Authorization": token},
	})
	if err != nil || raw == nil {
		return out, err
	}
	return decode[[]domain.Submission](raw, "/federations/submissions")
}

func (c *Client) CreateSubmission(ctx context.Context, token string, in ports.CreateSubmissionInput) (*domain.Submission, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	return post[*domain.Submission](ctx, c, "/federations/submissions", in, map[string]string{
		"Authorization": token,
	})
}

type subscribeInput struct {
	Email string `json:"email"`
}

func (c *Client) Subscribe(ctx context.Context, email string) error {
	_, err := post[map[string]any](ctx, c, "/subscribers", subscribeInput{Email: email}, nil)
	return err
}
