package domain

// Club is a member club of a federation, optionally carrying its rosters.
type Club struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country,omitempty"`
	Division     string   `json:"division,omitempty"`
	CoachName    string   `json:"coach_name,omitempty"`
	AthleteCount int      `json:"athlete_count,omitempty"`
	Rosters      []Roster `json:"rosters,omitempty"`
}

// Federation is the top of the federation → clubs → rosters tree.
type Federation struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Website string `json:"website,omitempty"`
	Clubs   []Club `json:"clubs,omitempty"`
}

// Submission is a federation results-upload record. Creation and listing are
// bearer-token protected on the backend.
type Submission struct {
	ID             int64  `json:"id,omitempty"`
	FederationName string `json:"federation_name"`
	PayloadURL     string `json:"payload_url"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status,omitempty"`
	SubmittedAt    string `json:"submitted_at,omitempty"`
	VerifiedAt     string `json:"verified_at,omitempty"`
}
