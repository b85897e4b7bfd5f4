package ports

import (
	"context"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// RegisterAccountInput is the payload for POST /accounts/register.
type RegisterAccountInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// CreateEventInput is the payload for POST /events/.
type CreateEventInput struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	FederationID *int64 `json:"federation_id"`
}

// CreateSubmissionInput is the payload for POST /federations/submissions.
type CreateSubmissionInput struct {
	FederationName string `json:"federation_name"`
	PayloadURL     string `json:"payload_url"`
	Notes          string `json:"notes,omitempty"`
}

// BackendGateway is the full REST surface this frontend consumes. Every call
// is a single attempt against the versioned API root; failures surface as
// *backend.APIError so callers can branch on the HTTP status.
type BackendGateway interface {
	ListAccounts(ctx context.Context) ([]domain.Athlete, error)
	RegisterAccount(ctx context.Context, in RegisterAccountInput) (*domain.Athlete, error)
	// Login exchanges form-encoded credentials for a bearer token.
	Login(ctx context.Context, email, password string) (*domain.AuthToken, error)

	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	GetEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, error)
	// SeedEventDemo asks the backend to seed demo sessions and results.
	SeedEventDemo(ctx context.Context, eventID int64) error

	GetAthleteDetail(ctx context.Context, athleteID int64) (*domain.AthleteDetail, error)

	ListRosters(ctx context.Context) ([]domain.Roster, error)
	GetRosterDetail(ctx context.Context, rosterID int64) (*domain.Roster, error)

	// ListSubmissions and CreateSubmission require a bearer token; the token
	// argument is sent verbatim in the Authorization header.
	ListSubmissions(ctx context.Context, token string) ([]domain.Submission, error)
	CreateSubmission(ctx context.Context, token string, in CreateSubmissionInput) (*domain.Submission, error)

	Subscribe(ctx context.Context, email string) error
}
