package service

import (
	"testing"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

func TestStore_SetAthletesAssignsSyntheticIDs(t *testing.T) {
	s := NewStore()
	s.SetAthletes([]domain.Athlete{
		{FullName: "Ana", Email: "ana@example.com"},
		{ID: 42, FullName: "Bea", Email: "bea@example.com"},
		{FullName: "Carla", Email: "carla@example.com"},
	})

	athletes := s.Athletes()
	if athletes[0].ID != 1 {
		t.Fatalf("expected synthetic id 1, got %d", athletes[0].ID)
	}
	if athletes[1].ID != 42 {
		t.Fatalf("expected existing id preserved, got %d", athletes[1].ID)
	}
	if athletes[2].ID != 3 {
		t.Fatalf("expected synthetic id 3, got %d", athletes[2].ID)
	}
}

func TestStore_SetAthletesEmptyIsIdempotent(t *testing.T) {
	s := NewStore()
	s.SetAthletes([]domain.Athlete{{FullName: "Ana", Email: "ana@example.com"}})

	s.SetAthletes(nil)
	if got := s.Athletes(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(got))
	}
	s.SetAthletes(nil)
	if got := s.Athletes(); len(got) != 0 {
		t.Fatalf("expected empty collection after second reset, got %d items", len(got))
	}
}

func TestStore_GettersReturnCopies(t *testing.T) {
	s := NewStore()
	s.SetEvents([]domain.Event{{Name: "Aurora Indoor Classic", Location: "Oslo, Norway"}})

	borrowed := s.Events()
	borrowed[0].Name = "mutated"

	if got := s.Events()[0].Name; got != "Aurora Indoor Classic" {
		t.Fatalf("store snapshot mutated through borrowed slice: %q", got)
	}
}

func TestStore_SeededWithSamples(t *testing.T) {
	s := NewStore()
	if len(s.Rosters()) == 0 || len(s.News()) == 0 || len(s.Federations()) == 0 || len(s.Results()) == 0 {
		t.Fatal("expected sample-seeded rosters, news, federations and results")
	}
	if len(s.Athletes()) != 0 || len(s.Events()) != 0 {
		t.Fatal("athletes and events must start empty until a live fetch runs")
	}
	if s.Federations()[0].ID != 1 {
		t.Fatalf("expected seeded federations to get synthetic ids, got %d", s.Federations()[0].ID)
	}
}

func TestStore_HydrateHomeIsPartial(t *testing.T) {
	s := NewStore()
	originalNews := s.News()

	s.HydrateHome(domain.HomeSnapshot{
		Events: []domain.Event{{Name: "Copa Cono Sur", Location: "Buenos Aires"}},
	})

	if got := s.Events(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected hydrated events with synthetic id, got %+v", got)
	}
	if got := s.News(); len(got) != len(originalNews) || got[0].Title != originalNews[0].Title {
		t.Fatal("hydration must not touch collections absent from the snapshot")
	}
}
