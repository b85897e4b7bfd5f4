package domain

// RecentResult is a denormalised scoreboard line shown on the landing page.
type RecentResult struct {
	EntryID        int64  `json:"entry_id,omitempty"`
	EventID        int64  `json:"event_id,omitempty"`
	EventName      string `json:"event_name"`
	DisciplineID   int64  `json:"discipline_id,omitempty"`
	DisciplineName string `json:"discipline_name"`
	AthleteName    string `json:"athlete_name"`
	TeamName       string `json:"team_name,omitempty"`
	Position       *int   `json:"position"`
	Result         string `json:"result,omitempty"`
	Points         *int   `json:"points"`
	RosterName     string `json:"roster_name,omitempty"`
	FederationName string `json:"federation_name,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}
