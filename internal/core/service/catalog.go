package service

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/trackeo/trackeo-web/internal/api/metrics"
	"github.com/trackeo/trackeo-web/internal/backend"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
)

// CatalogService drives the Loading → Loaded | Fallback cycle for every
// collection: it fetches from the backend, stores the result, and on failure
// substitutes the bundled samples so a page never renders blank. The error
// is returned alongside the fallback data so the controller can surface it
// as a toast.
//
// Write paths never substitute: a failed POST reports its error and leaves
// the store untouched.
type CatalogService struct {
	gateway ports.BackendGateway
	store   *Store
	clock   clockwork.Clock
	logger  zerolog.Logger
}

func NewCatalogService(gateway ports.BackendGateway, store *Store, clock clockwork.Clock, logger zerolog.Logger) *CatalogService {
	return &CatalogService{gateway: gateway, store: store, clock: clock, logger: logger}
}

// Store exposes the state snapshot for search and rendering.
func (s *CatalogService) Store() *Store { return s.store }

// LoadAthletes refreshes the athlete collection. On failure the sample
// athletes are substituted and the fetch error is returned with them.
func (s *CatalogService) LoadAthletes(ctx context.Context) ([]domain.Athlete, error) {
	athletes, err := s.gateway.ListAccounts(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("athlete fetch failed, substituting samples")
		metrics.FallbackSubstitutionsTotal.WithLabelValues("athletes").Inc()
		s.store.SetAthletes(FallbackAthletes(s.clock))
		return s.store.Athletes(), err
	}
	s.store.SetAthletes(athletes)
	return s.store.Athletes(), nil
}

// LoadEvents refreshes the event collection, substituting samples on failure.
func (s *CatalogService) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.gateway.ListEvents(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("event fetch failed, substituting samples")
		metrics.FallbackSubstitutionsTotal.WithLabelValues("events").Inc()
		s.store.SetEvents(FallbackEvents(s.clock))
		return s.store.Events(), err
	}
	s.store.SetEvents(events)
	return s.store.Events(), nil
}

// LoadRosters refreshes the roster collection, substituting samples on
// failure.
func (s *CatalogService) LoadRosters(ctx context.Context) ([]domain.Roster, error) {
	rosters, err := s.gateway.ListRosters(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("roster fetch failed, substituting samples")
		metrics.FallbackSubstitutionsTotal.WithLabelValues("rosters").Inc()
		s.store.SetRosters(FallbackRosters(s.clock))
		return s.store.Rosters(), err
	}
	s.store.SetRosters(rosters)
	return s.store.Rosters(), nil
}

// LoadEventDetail fetches one event's schedule and scoreboards. On failure a
// fabricated demo detail stands in, keyed to the requested id.
func (s *CatalogService) LoadEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, error) {
	detail, err := s.gateway.GetEventDetail(ctx, eventID)
	if err != nil || detail == nil {
		if err != nil {
			s.logger.Warn().Err(err).Int64("event_id", eventID).Msg("event detail fetch failed, substituting demo data")
		}
		metrics.FallbackSubstitutionsTotal.WithLabelValues("event_detail").Inc()
		return BuildSampleEventDetail(s.clock, eventID), err
	}
	return detail, nil
}

// SeedAthletes registers the sample athletes that are not already present
// (matched by email), tolerating 409 conflicts from concurrent seeding, then
// reloads the collection.
func (s *CatalogService) SeedAthletes(ctx context.Context) ([]domain.Athlete, error) {
	existing := make(map[string]bool)
	for _, a := range s.store.Athletes() {
		existing[a.Email] = true
	}
	for _, a := range sampleAthletes() {
		if existing[a.Email] {
			continue
		}
		_, err := s.gateway.RegisterAccount(ctx, ports.RegisterAccountInput{
			FullName: a.FullName,
			Email:    a.Email,
			Role:     a.Role,
			Password: a.Password,
		})
		if err != nil && !isStatus(err, 409) {
			s.logger.Warn().Err(err).Str("email", a.Email).Msg("failed to seed athlete")
		}
	}
	return s.LoadAthletes(ctx)
}

// SeedEvents creates the sample events that are not already present
// (matched by name), tolerating 400 rejections, then reloads the collection.
func (s *CatalogService) SeedEvents(ctx context.Context) ([]domain.Event, error) {
	existing := make(map[string]bool)
	for _, e := range s.store.Events() {
		existing[e.Name] = true
	}
	for _, e := range sampleEvents() {
		if existing[e.Name] {
			continue
		}
		_, err := s.gateway.CreateEvent(ctx, ports.CreateEventInput{
			Name:      e.Name,
			Location:  e.Location,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
		})
		if err != nil && !isStatus(err, 400) {
			s.logger.Warn().Err(err).Str("event", e.Name).Msg("failed to seed event")
		}
	}
	return s.LoadEvents(ctx)
}

func isStatus(err error, status int) bool {
	apiErr, ok := backend.AsAPIError(err)
	return ok && apiErr.Status == status
}
