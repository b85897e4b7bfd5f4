package service

import (
	"fmt"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

func testSnapshot(athletes, events, rosters, news int) Snapshot {
	snap := Snapshot{}
	for i := 0; i < athletes; i++ {
		snap.Athletes = append(snap.Athletes, domain.Athlete{
			ID: int64(i + 1), FullName: fmt.Sprintf("Athlete %d", i+1), Email: fmt.Sprintf("a%d@example.com", i+1), Role: "athlete",
		})
	}
	for i := 0; i < events; i++ {
		snap.Events = append(snap.Events, domain.Event{
			ID: int64(i + 1), Name: fmt.Sprintf("Event %d", i+1), Location: "Oslo",
		})
	}
	for i := 0; i < rosters; i++ {
		snap.Rosters = append(snap.Rosters, domain.Roster{
			ID: int64(i + 1), Name: fmt.Sprintf("Roster %d", i+1), Country: "Chile", Division: "U20", CoachName: "Coach", AthleteCount: 10,
		})
	}
	for i := 0; i < news; i++ {
		snap.News = append(snap.News, domain.NewsArticle{
			Title: fmt.Sprintf("News %d", i+1), Region: "Bogotá, CO", Excerpt: "excerpt",
		})
	}
	return snap
}

func testFormatter() *Formatter {
	return NewFormatter("en", clockwork.NewFakeClock())
}

func TestCollectSearchResults_EmptyQueryPreviewsFourPerCategory(t *testing.T) {
	snap := testSnapshot(6, 6, 6, 6)

	results := CollectSearchResults(snap, testFormatter(), "", domain.FilterAll)
	if len(results) != 12 {
		t.Fatalf("expected cap of 12 results, got %d", len(results))
	}

	perCategory := map[string]int{}
	for _, r := range results {
		perCategory[r.Category]++
	}
	if perCategory["Athletes"] != 4 || perCategory["Events"] != 4 || perCategory["Rosters"] != 4 {
		t.Fatalf("expected 4-per-category preview, got %v", perCategory)
	}
	// News loses out to the cap: 4+4+4 fills the twelve slots first.
	if perCategory["News"] != 0 {
		t.Fatalf("expected news to be capped out, got %v", perCategory)
	}
}

func TestCollectSearchResults_EmptyQueryUnderfillsWhenCategoriesAreSmall(t *testing.T) {
	snap := testSnapshot(1, 2, 0, 1)

	results := CollectSearchResults(snap, testFormatter(), "", domain.FilterAll)
	if len(results) != 4 {
		t.Fatalf("expected under-filled preview of 4 results, got %d", len(results))
	}
}

func TestCollectSearchResults_NonMatchingQueryReturnsEmpty(t *testing.T) {
	snap := testSnapshot(6, 6, 6, 6)

	results := CollectSearchResults(snap, testFormatter(), "zzz-no-such-thing", domain.FilterAll)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestCollectSearchResults_QueryMatchesBeyondPreviewWindow(t *testing.T) {
	snap := testSnapshot(6, 0, 0, 0)

	results := CollectSearchResults(snap, testFormatter(), "athlete 6", domain.FilterAll)
	if len(results) != 1 || results[0].Title != "Athlete 6" {
		t.Fatalf("expected the sixth athlete to match, got %+v", results)
	}
}

func TestCollectSearchResults_MatchIsCaseInsensitive(t *testing.T) {
	snap := testSnapshot(2, 0, 0, 0)

	results := CollectSearchResults(snap, testFormatter(), "ATHLETE 2", domain.FilterAll)
	if len(results) != 1 || results[0].Title != "Athlete 2" {
		t.Fatalf("expected case-insensitive match, got %+v", results)
	}
}

func TestCollectSearchResults_FilterLimitsCategories(t *testing.T) {
	snap := testSnapshot(3, 3, 3, 3)

	results := CollectSearchResults(snap, testFormatter(), "", domain.FilterRosters)
	if len(results) != 3 {
		t.Fatalf("expected only the roster rows, got %d", len(results))
	}
	for _, r := range results {
		if r.Category != "Rosters" {
			t.Fatalf("unexpected category %q", r.Category)
		}
	}
}

func TestCollectSearchResults_EventDetailFallsBackToDatesTBA(t *testing.T) {
	snap := Snapshot{Events: []domain.Event{{ID: 1, Name: "Copa", Location: "Lima"}}}

	results := CollectSearchResults(snap, testFormatter(), "copa", domain.FilterEvents)
	if len(results) != 1 || results[0].Detail != "Dates TBA" {
		t.Fatalf("expected Dates TBA detail, got %+v", results)
	}
	if results[0].URL != "/events/1" {
		t.Fatalf("expected event url, got %q", results[0].URL)
	}
}
