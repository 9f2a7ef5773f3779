// Package schedule derives the grouped, date-indexed schedule view from
// canonical assignment rows and keeps a last-known-good copy of it in redis.
package schedule

import (
	"fmt"
	"time"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

const DateLayout = "2006-01-02"
const MonthLayout = "2006-01"

// Project groups assignment rows by ISO date and appends each barista id into
// the sequence for its shift kind, preserving row order within a bucket.
// Dates without assignments are absent from the result.
func Project(rows []*domain.AssignmentRow) domain.GroupedSchedule {
	grouped := make(domain.GroupedSchedule)

	for _, row := range rows {
		dateStr := row.Date.Format(DateLayout)
		roster, exists := grouped[dateStr]
		if !exists {
			roster = domain.NewShiftRoster()
			grouped[dateStr] = roster
		}
		roster.Append(row.Kind, row.BaristaID)
	}

	return grouped
}

// FilterBarista returns a copy of the grouped view with every occurrence of
// the barista id removed. Used after a cascading delete so a stale cached view
// never hands out ids that no longer exist.
func FilterBarista(grouped domain.GroupedSchedule, baristaID int64) domain.GroupedSchedule {
	filtered := make(domain.GroupedSchedule, len(grouped))

	for dateStr, roster := range grouped {
		out := domain.NewShiftRoster()
		for _, kind := range domain.ShiftKinds {
			for _, id := range roster.IDs(kind) {
				if id != baristaID {
					out.Append(kind, id)
				}
			}
		}
		filtered[dateStr] = out
	}

	return filtered
}

// MonthBounds returns the first and last calendar day of the month. The upper
// bound is the real last day (time.Date normalizes day 0 of the next month),
// never a fabricated day 31.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// ParseMonth parses a YYYY-MM string into its month bounds.
func ParseMonth(s string) (time.Time, time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	first, last := MonthBounds(t.Year(), t.Month())
	return first, last, nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
