package domain

// RosterOwner identifies the account that manages a roster.
type RosterOwner struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}

// RosterAthlete is the trimmed athlete record nested in a roster detail.
type RosterAthlete struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// Roster mirrors a backend club roster. The athlete list and owner are only
// populated on the detail endpoint.
type Roster struct {
	ID           int64           `json:"id,omitempty"`
	Name         string          `json:"name"`
	Country      string          `json:"country"`
	Division     string          `json:"division,omitempty"`
	CoachName    string          `json:"coach_name,omitempty"`
	AthleteCount int             `json:"athlete_count,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
	Athletes     []RosterAthlete `json:"athletes,omitempty"`
	Owner        *RosterOwner    `json:"owner,omitempty"`
}
