package domain

import "time"

// RosterEvent is the message published to the roster_events queue after every
// schedule write, consumed by cmd/notifier.
type RosterEvent struct {
	Type       string    `json:"type"`
	Date       string    `json:"date,omitempty"`
	Shift      ShiftKind `json:"shift,omitempty"`
	BaristaIDs []int64   `json:"baristaIds,omitempty"`
	Barista    string    `json:"barista,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	EventShiftReplaced  = "shift_replaced"
	EventDateCleared    = "date_cleared"
	EventBaristaRemoved = "barista_removed"
)
