package service

import (
	"sync"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// Store is the in-memory snapshot of the last successfully fetched (or
// sample-seeded) collections. It is owned by the application context and
// passed to the page controllers; there is no package-level instance.
//
// Setters replace a collection wholesale, assigning a synthetic sequential
// id to any item lacking one. Getters hand out copies, so the snapshot only
// changes through the setters.
type Store struct {
	mu          sync.Mutex
	athletes    []domain.Athlete
	events      []domain.Event
	rosters     []domain.Roster
	news        []domain.NewsArticle
	federations []domain.Federation
	results     []domain.RecentResult
}

// NewStore returns a store seeded with the bundled samples, mirroring the
// initial render before any live data arrives.
func NewStore() *Store {
	s := &Store{}
	s.SetRosters(sampleRosters())
	s.SetNews(sampleNews())
	s.SetFederations(sampleFederations())
	s.SetResults(sampleResults())
	return s
}

// Snapshot is a point-in-time copy of every collection, safe to read without
// holding the store's lock.
type Snapshot struct {
	Athletes    []domain.Athlete
	Events      []domain.Event
	Rosters     []domain.Roster
	News        []domain.NewsArticle
	Federations []domain.Federation
	Results     []domain.RecentResult
}

func (s *Store) SetAthletes(athletes []domain.Athlete) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.athletes = make([]domain.Athlete, len(athletes))
	for i, a := range athletes {
		if a.ID == 0 {
			a.ID = int64(i + 1)
		}
		s.athletes[i] = a
	}
}

func (s *Store) SetEvents(events []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]domain.Event, len(events))
	for i, e := range events {
		if e.ID == 0 {
			e.ID = int64(i + 1)
		}
		s.events[i] = e
	}
}

func (s *Store) SetRosters(rosters []domain.Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosters = make([]domain.Roster, len(rosters))
	for i, r := range rosters {
		if r.ID == 0 {
			r.ID = int64(i + 1)
		}
		s.rosters[i] = r
	}
}

func (s *Store) SetNews(news []domain.NewsArticle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.news = append([]domain.NewsArticle(nil), news...)
}

func (s *Store) SetFederations(federations []domain.Federation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.federations = make([]domain.Federation, len(federations))
	for i, f := range federations {
		if f.ID == 0 {
			f.ID = int64(i + 1)
		}
		s.federations[i] = f
	}
}

func (s *Store) SetResults(results []domain.RecentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append([]domain.RecentResult(nil), results...)
}

func (s *Store) Athletes() []domain.Athlete {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Athlete(nil), s.athletes...)
}

func (s *Store) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func (s *Store) Rosters() []domain.Roster {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Roster(nil), s.rosters...)
}

func (s *Store) News() []domain.NewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.NewsArticle(nil), s.news...)
}

func (s *Store) Federations() []domain.Federation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Federation(nil), s.federations...)
}

func (s *Store) Results() []domain.RecentResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RecentResult(nil), s.results...)
}

// HydrateHome merges an externally supplied snapshot, collection by
// collection, only overwriting collections actually present in the input.
// Partial hydration is legal: a nil collection leaves the current one alone.
func (s *Store) HydrateHome(snap domain.HomeSnapshot) {
	if snap.Athletes != nil {
		s.SetAthletes(snap.Athletes)
	}
	if snap.Events != nil {
		s.SetEvents(snap.Events)
	}
	if snap.Rosters != nil {
		s.SetRosters(snap.Rosters)
	}
	if snap.News != nil {
		s.SetNews(snap.News)
	}
	if snap.Federations != nil {
		s.SetFederations(snap.Federations)
	}
	if snap.Results != nil {
		s.SetResults(snap.Results)
	}
}

// Snapshot copies all collections at once for read-heavy callers like the
// search aggregator.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Athletes:    append([]domain.Athlete(nil), s.athletes...),
		Events:      append([]domain.Event(nil), s.events...),
		Rosters:     append([]domain.Roster(nil), s.rosters...),
		News:        append([]domain.NewsArticle(nil), s.news...),
		Federations: append([]domain.Federation(nil), s.federations...),
		Results:     append([]domain.RecentResult(nil), s.results...),
	}
}
