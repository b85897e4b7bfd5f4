package service

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// futureGrace keeps events from yesterday classified as upcoming, matching
// the one-day window the original listings used.
const futureGrace = 24 * time.Hour

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var monthNames = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	"pt": {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
}

// Formatter turns raw backend date/time strings into locale-formatted
// display strings. Backend values arrive either as RFC 3339 timestamps or
// bare dates; anything unparseable degrades rather than erroring.
type Formatter struct {
	locale string
	clock  clockwork.Clock
}

// NewFormatter returns a formatter for the given locale. Unsupported locales
// format like English.
func NewFormatter(locale string, clock clockwork.Clock) *Formatter {
	if _, ok := monthNames[locale]; !ok {
		locale = "en"
	}
	return &Formatter{locale: locale, clock: clock}
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (f *Formatter) month(t time.Time) string {
	return monthNames[f.locale][t.Month()-1]
}

// Date renders "Jan 2, 2006" (or the locale's order). An unparseable
// non-empty value is returned as-is so a translation gap stays visible.
func (f *Formatter) Date(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	if f.locale == "en" {
		return fmt.Sprintf("%s %d, %d", f.month(t), t.Day(), t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), f.month(t), t.Year())
}

// DateTime renders a full timestamp, or "" when the value is unparseable.
func (f *Formatter) DateTime(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s, %02d:%02d", f.Date(value), t.Hour(), t.Minute())
}

func (f *Formatter) dayTime(t time.Time) string {
	if f.locale == "en" {
		return fmt.Sprintf("%s %d, %02d:%02d", f.month(t), t.Day(), t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%d %s, %02d:%02d", t.Day(), f.month(t), t.Hour(), t.Minute())
}

// TimeRange renders a start–end window. Same-day ranges show bare times;
// cross-day ranges repeat the day on both sides. A single bound renders
// alone, and any unparseable bound collapses the range to "".
func (f *Formatter) TimeRange(start, end string) string {
	var startAt, endAt time.Time
	haveStart, haveEnd := false, false
	if start != "" {
		t, ok := parseDate(start)
		if !ok {
			return ""
		}
		startAt, haveStart = t, true
	}
	if end != "" {
		t, ok := parseDate(end)
		if !ok {
			return ""
		}
		endAt, haveEnd = t, true
	}

	switch {
	case haveStart && haveEnd:
		if startAt.Year() == endAt.Year() && startAt.YearDay() == endAt.YearDay() {
			return fmt.Sprintf("%02d:%02d – %02d:%02d", startAt.Hour(), startAt.Minute(), endAt.Hour(), endAt.Minute())
		}
		return f.dayTime(startAt) + " – " + f.dayTime(endAt)
	case haveStart:
		return f.dayTime(startAt)
	case haveEnd:
		return f.dayTime(endAt)
	default:
		return ""
	}
}

// DateRange renders "start – end" as dates, used on event cards.
func (f *Formatter) DateRange(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	return f.Date(start) + " – " + f.Date(end)
}

// IsFutureDate reports whether the value is today or later (with the grace
// window). Unparseable values are never future.
func (f *Formatter) IsFutureDate(value string) bool {
	t, ok := parseDate(value)
	if !ok {
		return false
	}
	return !t.Before(f.clock.Now().Add(-futureGrace))
}
