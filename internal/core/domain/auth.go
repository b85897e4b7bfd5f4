package domain

// AuthToken is the bearer credential handed out by the backend login
// endpoint. The expiry is stored alongside the token but is not checked
// before reuse; the backend remains the authority on token validity.
type AuthToken struct {
	Token     string `json:"access_token"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Tier      string `json:"subscription_tier,omitempty"`
}

// HomeSnapshot is an externally supplied initial payload for the landing
// page. Any subset of the collections may be present; absent collections
// leave the current state untouched.
type HomeSnapshot struct {
	Athletes    []Athlete      `json:"athletes,omitempty"`
	Events      []Event        `json:"events,omitempty"`
	Rosters     []Roster       `json:"rosters,omitempty"`
	News        []NewsArticle  `json:"news,omitempty"`
	Federations []Federation   `json:"federations,omitempty"`
	Results     []RecentResult `json:"results,omitempty"`
}
