package domain

// Athlete roles accepted by the backend registry.
const (
	RoleAthlete = "athlete"
	RoleCoach   = "coach"
	RoleStaff   = "staff"
)

// Athlete mirrors a backend account profile. The password is write-only: it
// travels in registration payloads and is never rendered or stored locally.
type Athlete struct {
	ID        int64  `json:"id,omitempty"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Password  string `json:"password,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// TrackHistoryEntry is a single line of an athlete's competition history.
type TrackHistoryEntry struct {
	Event     string `json:"event"`
	EventDate string `json:"event_date,omitempty"`
	Result    string `json:"result"`
	VideoURL  string `json:"video_url,omitempty"`
}

// AthleteDetail is the full profile returned by GET /athletes/{id},
// including history and roster memberships.
type AthleteDetail struct {
	ID                int64               `json:"id"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	Role              string              `json:"role"`
	Country           string              `json:"country,omitempty"`
	Bio               string              `json:"bio,omitempty"`
	HighlightVideoURL string              `json:"highlight_video_url,omitempty"`
	TrackHistory      []TrackHistoryEntry `json:"track_history,omitempty"`
	Rosters           []Roster            `json:"rosters,omitempty"`
}
