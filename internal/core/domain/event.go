package domain

// SessionStatus is the lifecycle state of an event session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionLive      SessionStatus = "live"
	SessionCompleted SessionStatus = "completed"
)

// DisciplineStatus is the lifecycle state of a single discipline.
type DisciplineStatus string

const (
	DisciplineScheduled DisciplineStatus = "scheduled"
	DisciplineLive      DisciplineStatus = "live"
	DisciplineFinalized DisciplineStatus = "finalized"
)

// Event mirrors a backend competition event. Date fields carry the raw
// backend strings (date-only or RFC 3339); formatting happens at render time.
type Event struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	FederationID *int64 `json:"federation_id"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Session is a timed block of an event's schedule.
type Session struct {
	ID          int64         `json:"id"`
	EventID     int64         `json:"event_id,omitempty"`
	Name        string        `json:"name"`
	StartTime   string        `json:"start_time,omitempty"`
	EndTime     string        `json:"end_time,omitempty"`
	Venue       string        `json:"venue,omitempty"`
	Status      SessionStatus `json:"status"`
	Description string        `json:"description,omitempty"`
}

// Entry is one ranked row of a discipline scoreboard. Lane, position,
// result and points are nullable until the discipline produces them.
type Entry struct {
	ID           int64   `json:"id"`
	DisciplineID int64   `json:"discipline_id,omitempty"`
	AthleteName  string  `json:"athlete_name"`
	TeamName     string  `json:"team_name,omitempty"`
	Status       string  `json:"status,omitempty"`
	Lane         *string `json:"lane"`
	Position     *int    `json:"position"`
	Result       *string `json:"result"`
	Points       *int    `json:"points"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// Discipline is a single competitive event (e.g. "100m Final") within an
// event's schedule, with its ordered entry rows.
type Discipline struct {
	ID             int64            `json:"id"`
	EventID        int64            `json:"event_id,omitempty"`
	SessionID      *int64           `json:"session_id"`
	Name           string           `json:"name"`
	Category       string           `json:"category,omitempty"`
	RoundName      string           `json:"round_name,omitempty"`
	ScheduledStart string           `json:"scheduled_start,omitempty"`
	ScheduledEnd   string           `json:"scheduled_end,omitempty"`
	Status         DisciplineStatus `json:"status"`
	Venue          string           `json:"venue,omitempty"`
	Order          int              `json:"order,omitempty"`
	Session        *Session         `json:"session,omitempty"`
	Entries        []Entry          `json:"entries,omitempty"`
}

// EventDetail is the event plus its ordered sessions and disciplines,
// as returned by GET /events/{id}.
type EventDetail struct {
	Event
	Sessions     []Session    `json:"sessions,omitempty"`
	Disciplines  []Discipline `json:"disciplines,omitempty"`
	LatestUpdate string       `json:"latest_update,omitempty"`
}

// SummaryStatus derives a single headline status for the event from its
// session and discipline states. Live wins over everything; a finalized
// discipline or completed session marks the event finalized; otherwise
// the event is still scheduled.
func (d EventDetail) SummaryStatus() string {
	finalized := false
	for _, s := range d.Sessions {
		switch s.Status {
		case SessionLive:
			return "live"
		case SessionCompleted:
			finalized = true
		}
	}
	for _, disc := range d.Disciplines {
		switch disc.Status {
		case DisciplineLive:
			return "live"
		case DisciplineFinalized:
			finalized = true
		}
	}
	if finalized {
		return "finalized"
	}
	return "scheduled"
}

// LiveSessionCount reports how many sessions are currently live.
func (d EventDetail) LiveSessionCount() int {
	n := 0
	for _, s := range d.Sessions {
		if s.Status == SessionLive {
			n++
		}
	}
	return n
}
