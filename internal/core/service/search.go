package service

import (
	"fmt"
	"strings"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

const (
	searchResultCap    = 12
	searchPreviewCount = 4
)

// CollectSearchResults assembles the federated search list: a case-
// insensitive substring match across the four collections in fixed order
// (athletes, events, rosters, news), bucketed by the active category filter.
//
// With an empty query each included category contributes a preview of its
// first four items rather than the first twelve overall, so the page can
// under-fill when early categories are small. The combined list is capped
// at twelve rows either way; source order is preserved and there is no
// relevance scoring.
func CollectSearchResults(snap Snapshot, f *Formatter, query, filter string) []domain.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	include := func(category string) bool {
		return filter == domain.FilterAll || filter == category
	}
	matches := func(query string, fields ...string) bool {
		for _, field := range fields {
			if field != "" && strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	}

	var results []domain.SearchResult

	if include(domain.FilterAthletes) {
		athletes := snap.Athletes
		if query == "" && len(athletes) > searchPreviewCount {
			athletes = athletes[:searchPreviewCount]
		}
		for _, a := range athletes {
			if query != "" && !matches(query, a.FullName, a.Email) {
				continue
			}
			r := domain.SearchResult{
				Category: "Athletes",
				Title:    a.FullName,
				Subtitle: a.Email,
				Detail:   a.Role,
			}
			if a.ID != 0 {
				r.URL = fmt.Sprintf("/athletes/%d", a.ID)
			}
			results = append(results, r)
		}
	}

	if include(domain.FilterEvents) {
		events := snap.Events
		if query == "" && len(events) > searchPreviewCount {
			events = events[:searchPreviewCount]
		}
		for _, e := range events {
			if query != "" && !matches(query, e.Name, e.Location) {
				continue
			}
			detail := "Dates TBA"
			if e.StartDate != "" && e.EndDate != "" {
				detail = f.DateRange(e.StartDate, e.EndDate)
			}
			r := domain.SearchResult{
				Category: "Events",
				Title:    e.Name,
				Subtitle: e.Location,
				Detail:   detail,
			}
			if e.ID != 0 {
				r.URL = fmt.Sprintf("/events/%d", e.ID)
			}
			results = append(results, r)
		}
	}

	if include(domain.FilterRosters) {
		rosters := snap.Rosters
		if query == "" && len(rosters) > searchPreviewCount {
			rosters = rosters[:searchPreviewCount]
		}
		for _, ro := range rosters {
			if query != "" && !matches(query, ro.Name, ro.Country, ro.CoachName) {
				continue
			}
			athletes := "--"
			if ro.AthleteCount > 0 {
				athletes = fmt.Sprintf("%d", ro.AthleteCount)
			}
			coach := ro.CoachName
			if coach == "" {
				coach = "TBA"
			}
			r := domain.SearchResult{
				Category: "Rosters",
				Title:    ro.Name,
				Subtitle: ro.Country + " · " + ro.Division,
				Detail:   fmt.Sprintf("%s athletes • Coach %s", athletes, coach),
			}
			if ro.ID != 0 {
				r.URL = fmt.Sprintf("/rosters/%d", ro.ID)
			}
			results = append(results, r)
		}
	}

	if include(domain.FilterNews) {
		news := snap.News
		if query == "" && len(news) > searchPreviewCount {
			news = news[:searchPreviewCount]
		}
		for _, n := range news {
			if query != "" && !matches(query, n.Title, n.Region, n.Excerpt) {
				continue
			}
			detail := f.Date(n.PublishedAt)
			if detail == "" {
				detail = n.Excerpt
			}
			results = append(results, domain.SearchResult{
				Category:    "News",
				Title:       n.Title,
				Subtitle:    n.Region,
				Detail:      detail,
				Description: n.Excerpt,
			})
		}
	}

	if len(results) > searchResultCap {
		results = results[:searchResultCap]
	}
	return results
}
