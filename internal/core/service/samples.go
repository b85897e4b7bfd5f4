package service

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// Bundled sample records. They seed the state store at startup and replace a
// collection when its live fetch fails, so pages are never left blank.

func sampleAthletes() []domain.Athlete {
	return []domain.Athlete{
		{FullName: "Ramiro Lightfoot", Email: "ramiro.lightfoot@example.com", Role: domain.RoleAthlete, Password: "Shimmering123"},
		{FullName: "Sofía Delgado", Email: "sofia.delgado@example.com", Role: domain.RoleAthlete, Password: "Sprinter123"},
		{FullName: "Liam O'Connor", Email: "liam.oconnor@example.com", Role: domain.RoleAthlete, Password: "Hurdles123"},
	}
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{Name: "Aurora Indoor Classic", Location: "Oslo, Norway", StartDate: "2024-02-10", EndDate: "2024-02-12"},
		{Name: "Sunset Coast Invitational", Location: "Porto, Portugal", StartDate: "2024-04-22", EndDate: "2024-04-24"},
		{Name: "Highlands Distance Festival", Location: "Edinburgh, Scotland", StartDate: "2024-09-14", EndDate: "2024-09-15"},
	}
}

func sampleRosters() []domain.Roster {
	return []domain.Roster{
		{Name: "Club Andino Quito", Country: "Ecuador", Division: "U20", AthleteCount: 18, CoachName: "María Torres", UpdatedAt: "2024-08-11T13:45:00Z"},
		{Name: "São Paulo Relays", Country: "Brazil", Division: "Senior", AthleteCount: 26, CoachName: "Igor Almeida", UpdatedAt: "2024-08-09T09:20:00Z"},
		{Name: "Bogotá Altitude Club", Country: "Colombia", Division: "U18", AthleteCount: 14, CoachName: "Carolina Ríos", UpdatedAt: "2024-08-02T18:10:00Z"},
	}
}

func sampleNews() []domain.NewsArticle {
	return []domain.NewsArticle{
		{
			Title:       "Camila Torres sets new 400m South American record",
			Region:      "Buenos Aires, AR",
			PublishedAt: "2024-08-13T12:00:00Z",
			Excerpt:     "The 21-year-old from Córdoba clocked **50.82s** at the Copa Cono Sur finale.",
		},
		{
			Title:       "Bogotá Marathon expands elite field for 2025",
			Region:      "Bogotá, CO",
			PublishedAt: "2024-08-10T08:30:00Z",
			Excerpt:     "Trackeo partners with local organizers to deliver real-time splits in Spanish and English.",
		},
		{
			Title:       "Brazilian U20 relay camp launches in São Paulo",
			Region:      "São Paulo, BR",
			PublishedAt: "2024-08-05T16:15:00Z",
			Excerpt:     "Coaches gain access to workload dashboards via the Trackeo *Coach* tier.",
		},
	}
}

func sampleFederations() []domain.Federation {
	return []domain.Federation{
		{
			Name:    "Confederação Brasileira de Atletismo",
			Country: "Brazil",
			Clubs: []domain.Club{
				{ID: 101, Name: "São Paulo Relays", Country: "Brazil", Division: "Senior", CoachName: "Igor Almeida", AthleteCount: 26},
				{ID: 102, Name: "Amazon Striders", Country: "Brazil", Division: "U20", CoachName: "Lívia Rocha", AthleteCount: 19},
			},
		},
		{
			Name:    "Federación Colombiana de Atletismo",
			Country: "Colombia",
			Clubs: []domain.Club{
				{ID: 201, Name: "Bogotá Altitude Club", Country: "Colombia", Division: "U18", CoachName: "Carolina Ríos", AthleteCount: 14},
			},
		},
		{
			Name:    "Federación Atlética de Chile",
			Country: "Chile",
			Clubs: []domain.Club{
				{ID: 301, Name: "Patagonia Peaks", Country: "Chile", Division: "Senior", CoachName: "Ignacio Fuentes", AthleteCount: 21},
			},
		},
	}
}

func sampleResults() []domain.RecentResult {
	pos := func(n int) *int { return &n }
	return []domain.RecentResult{
		{EventName: "Campeonato Sudamericano U23", DisciplineName: "100m Final", AthleteName: "Camila Torres", TeamName: "ARG", Position: pos(1), Result: "11.28"},
		{EventName: "Relays de São Paulo", DisciplineName: "4x400m Mixed", AthleteName: "São Paulo Relays", TeamName: "BRA", Position: pos(1), Result: "3:18.44"},
		{EventName: "Gran Premio Ciudad de México", DisciplineName: "Long Jump Final", AthleteName: "Thiago López", TeamName: "BRA", Position: pos(1), Result: "8.08m"},
	}
}

// FallbackAthletes returns the sample athletes shaped like live records:
// synthetic ids 1..n and created-at timestamps counting back one day per row.
func FallbackAthletes(clock clockwork.Clock) []domain.Athlete {
	now := clock.Now().UTC()
	athletes := sampleAthletes()
	for i := range athletes {
		athletes[i].ID = int64(i + 1)
		athletes[i].CreatedAt = now.Add(-time.Duration(i) * 24 * time.Hour).Format(time.RFC3339)
	}
	return athletes
}

// FallbackEvents returns the sample events with synthetic ids and, for any
// missing dates, start dates spaced a week apart from now.
func FallbackEvents(clock clockwork.Clock) []domain.Event {
	now := clock.Now().UTC()
	events := sampleEvents()
	for i := range events {
		events[i].ID = int64(i + 1)
		if events[i].StartDate == "" {
			events[i].StartDate = now.Add(time.Duration(i) * 7 * 24 * time.Hour).Format(time.RFC3339)
		}
		if events[i].EndDate == "" {
			events[i].EndDate = now.Add(time.Duration(i)*7*24*time.Hour + 24*time.Hour).Format(time.RFC3339)
		}
	}
	return events
}

// FallbackRosters returns the sample rosters, stamping rows that lack an
// updated-at with the current time.
func FallbackRosters(clock clockwork.Clock) []domain.Roster {
	now := clock.Now().UTC()
	rosters := sampleRosters()
	for i := range rosters {
		rosters[i].ID = int64(i + 1)
		if rosters[i].UpdatedAt == "" {
			rosters[i].UpdatedAt = now.Format(time.RFC3339)
		}
	}
	return rosters
}

// BuildSampleEventDetail fabricates a live-looking event detail: one session
// in progress, one upcoming, and three disciplines across them with entry
// scoreboards in every state.
func BuildSampleEventDetail(clock clockwork.Clock, eventID int64) *domain.EventDetail {
	if eventID == 0 {
		eventID = 1
	}
	now := clock.Now().UTC()
	ts := func(t time.Time) string { return t.Format(time.RFC3339) }
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	sessionOne := domain.Session{
		ID: 1, EventID: eventID, Name: "Morning Session",
		StartTime: ts(now.Add(-30 * time.Minute)), EndTime: ts(now.Add(time.Hour)),
		Venue: "Main Stadium", Status: domain.SessionLive, Description: "Sample data session",
	}
	sessionTwo := domain.Session{
		ID: 2, EventID: eventID, Name: "Evening Finals",
		StartTime: ts(now.Add(2 * time.Hour)), EndTime: ts(now.Add(3 * time.Hour)),
		Venue: "Main Stadium", Status: domain.SessionScheduled, Description: "Sample finals block",
	}

	sid := func(s domain.Session) *int64 { id := s.ID; return &id }

	disciplines := []domain.Discipline{
		{
			ID: 1, EventID: eventID, SessionID: sid(sessionOne), Name: "100m", Category: "Sprints",
			RoundName:      "Final",
			ScheduledStart: sessionOne.StartTime, ScheduledEnd: ts(now.Add(-30*time.Minute + 30*time.Minute)),
			Status: domain.DisciplineFinalized, Venue: "Main Stadium", Order: 1,
			Session: &sessionOne,
			Entries: []domain.Entry{
				{ID: 1, DisciplineID: 1, AthleteName: "Valentina Ríos", TeamName: "Andean Flyers", Status: "finished", Lane: str("4"), Position: num(1), Result: str("11.32s"), Points: num(12), UpdatedAt: ts(now)},
				{ID: 2, DisciplineID: 1, AthleteName: "Mateo Herrera", TeamName: "Caribbean Storm", Status: "finished", Lane: str("5"), Position: num(2), Result: str("11.40s"), Points: num(10), UpdatedAt: ts(now)},
				{ID: 3, DisciplineID: 1, AthleteName: "Camila Ibáñez", TeamName: "Patagonia Peaks", Status: "finished", Lane: str("3"), Position: num(3), Result: str("11.55s"), Points: num(8), UpdatedAt: ts(now)},
				{ID: 4, DisciplineID: 1, AthleteName: "Thiago López", TeamName: "Amazon Striders", Status: "finished", Lane: str("2"), Position: num(4), Result: str("11.60s"), Points: num(6), UpdatedAt: ts(now)},
			},
		},
		{
			ID: 2, EventID: eventID, SessionID: sid(sessionOne), Name: "Long Jump", Category: "Jumps",
			RoundName:      "Final",
			ScheduledStart: ts(now.Add(10 * time.Minute)), ScheduledEnd: ts(now.Add(60 * time.Minute)),
			Status: domain.DisciplineLive, Venue: "Jumps Apron", Order: 2,
			Session: &sessionOne,
			Entries: []domain.Entry{
				{ID: 5, DisciplineID: 2, AthleteName: "Renata Gómez", TeamName: "Cusco Distance", Status: "live", Result: str("6.48m"), UpdatedAt: ts(now)},
				{ID: 6, DisciplineID: 2, AthleteName: "Daniel Torres", TeamName: "Granada Hurdlers", Status: "live", Result: str("6.30m"), UpdatedAt: ts(now)},
			},
		},
		{
			ID: 3, EventID: eventID, SessionID: sid(sessionTwo), Name: "4x400m Relay", Category: "Relays",
			RoundName:      "Final",
			ScheduledStart: sessionTwo.StartTime, ScheduledEnd: ts(now.Add(3 * time.Hour)),
			Status: domain.DisciplineScheduled, Venue: "Main Stadium", Order: 1,
			Session: &sessionTwo,
			Entries: []domain.Entry{
				{ID: 7, DisciplineID: 3, AthleteName: "Pacífico Runners", TeamName: "Pacífico Runners", Status: "scheduled", Lane: str("4"), UpdatedAt: ts(now)},
				{ID: 8, DisciplineID: 3, AthleteName: "Quito Relays", TeamName: "Quito Relays", Status: "scheduled", Lane: str("5"), UpdatedAt: ts(now)},
			},
		},
	}

	return &domain.EventDetail{
		Event: domain.Event{
			ID:        eventID,
			Name:      "Aurora Indoor Classic",
			Location:  "Oslo, Norway",
			StartDate: ts(now.Add(-time.Hour)),
			EndDate:   ts(now.Add(48 * time.Hour)),
		},
		Sessions:     []domain.Session{sessionOne, sessionTwo},
		Disciplines:  disciplines,
		LatestUpdate: ts(now),
	}
}
