package domain

// Search category filters accepted by the aggregator.
const (
	FilterAll      = "all"
	FilterAthletes = "athletes"
	FilterEvents   = "events"
	FilterRosters  = "rosters"
	FilterNews     = "news"
)

// SearchResult is a derived, ephemeral row of the federated search box.
// It is assembled per request and never persisted.
type SearchResult struct {
	Category    string
	Title       string
	Subtitle    string
	Detail      string
	Description string
	URL         string
}
