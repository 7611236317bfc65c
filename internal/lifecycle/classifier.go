// Package lifecycle assigns content items a lifecycle state (past, ongoing,
// future) relative to an evaluation instant, and derives the presentation
// strings and sort keys the listing pages are built from. It is the single
// source of truth for the date-driven categorization rules; everything here
// is pure and safe for concurrent use.
package lifecycle

import (
	"fmt"
	"math"
	"time"
)

// State is the lifecycle state of a content item.
type State string

const (
	StatePast    State = "past"
	StateOngoing State = "ongoing"
	StateFuture  State = "future"
)

// EventType describes the temporal shape of an event.
type EventType string

const (
	EventSingleDay EventType = "single-day"
	EventMultiDay  EventType = "multi-day"
	EventOngoing   EventType = "ongoing"
)

// Thresholds for ongoing-type events, in whole days since start. An ongoing
// program counts as newly announced for its first month, actively running
// through its first quarter, then archived. These values are editorial;
// do not change them without a domain owner's sign-off.
const (
	AnnounceWindowDays = 30
	ActiveWindowDays   = 90
)

const dayLength = 24 * time.Hour

// Item carries the timestamps and event shape needed for classification.
// StartDate and EndDate are optional; classification tolerates any subset
// of the optional fields being absent by falling through to the
// single-day default rule.
type Item struct {
	CreatedAt time.Time
	StartDate *time.Time
	EndDate   *time.Time
	EventType EventType
	Duration  string
}

// Classifier classifies items relative to Now. The zero value uses
// time.Now. Callers rendering a listing should sample now once via At so
// that a single pass is internally consistent.
type Classifier struct {
	Now func() time.Time
}

func (c Classifier) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Classify returns the lifecycle state of item at the classifier's current
// instant. First matching rule wins: multi-day interval, ongoing-type
// elapsed-days thresholds, then the single-day default.
func (c Classifier) Classify(item Item) State {
	return ClassifyAt(item, c.now())
}

// ClassifyAt is Classify with an explicit evaluation instant.
func ClassifyAt(item Item, now time.Time) State {
	if item.EventType == EventMultiDay && item.StartDate != nil && item.EndDate != nil {
		start := startOfDay(*item.StartDate)
		end := endOfDay(*item.EndDate)

		// An event whose first day is today is always in progress,
		// overriding the interval check.
		if sameDay(*item.StartDate, now) {
			return StateOngoing
		}
		switch {
		case now.Before(start):
			return StateFuture
		case !now.After(end):
			return StateOngoing
		default:
			return StatePast
		}
	}

	if item.EventType == EventOngoing && item.StartDate != nil {
		days := wholeDaysBetween(*item.StartDate, now)
		switch {
		case days < AnnounceWindowDays:
			return StateFuture
		case days < ActiveWindowDays:
			return StateOngoing
		default:
			return StatePast
		}
	}

	// Single-day default: classify by startDate if present, else createdAt,
	// compared calendar day against today.
	date := item.CreatedAt
	if item.StartDate != nil {
		date = *item.StartDate
	}
	day := startOfDay(date)
	today := startOfDay(now)
	switch {
	case day.Equal(today):
		return StateOngoing
	case day.Before(today):
		return StatePast
	default:
		return StateFuture
	}
}

// StatusLabel returns the human-readable status string for item.
func (c Classifier) StatusLabel(item Item) string {
	now := c.now()
	if item.EventType == "" || item.EventType == EventSingleDay {
		return "Eveniment de o zi"
	}
	if item.EventType == EventMultiDay && item.StartDate != nil && item.EndDate != nil {
		start := *item.StartDate
		end := *item.EndDate
		switch {
		case now.Before(start):
			return fmt.Sprintf("Începe în %d zile", daysUntil(now, start))
		case !now.After(end):
			return fmt.Sprintf("În desfășurare - se termină în %d zile", daysUntil(now, end))
		default:
			return "Eveniment încheiat"
		}
	}
	return "Status necunoscut"
}

// DurationLabel returns the explicit duration if set, a computed day count
// for multi-day events, otherwise "Durata necunoscută".
func DurationLabel(item Item) string {
	if item.Duration != "" {
		return item.Duration
	}
	if item.EventType == EventMultiDay && item.StartDate != nil && item.EndDate != nil {
		days := daysUntil(*item.StartDate, *item.EndDate)
		return fmt.Sprintf("%d zile", days)
	}
	return "Durata necunoscută"
}

// SortKey returns the normalized date listing pages order by (descending):
// the start date when present, otherwise the creation date.
func SortKey(item Item) time.Time {
	if item.StartDate != nil {
		return *item.StartDate
	}
	return item.CreatedAt
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// wholeDaysBetween floors the elapsed time from start to now to whole days.
// Negative deltas floor toward negative infinity, so a start date in the
// future still lands below the announce threshold.
func wholeDaysBetween(start, now time.Time) int {
	return int(math.Floor(now.Sub(start).Hours() / 24))
}

// daysUntil rounds the distance from now to t up to whole days.
func daysUntil(now, t time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// Validate rejects date combinations that must not enter storage: a
// multi-day event needs both bounds, in order; an ongoing event needs a
// start date.
func Validate(item Item) error {
	switch item.EventType {
	case EventMultiDay:
		if item.StartDate == nil || item.EndDate == nil {
			return fmt.Errorf("multi-day event requires start_date and end_date")
		}
		if item.EndDate.Before(*item.StartDate) {
			return fmt.Errorf("start_date must not be after end_date")
		}
	case EventOngoing:
		if item.StartDate == nil {
			return fmt.Errorf("ongoing event requires start_date")
		}
	}
	return nil
}
