package domain

import (
	"time"
)

type ShiftKind string

const (
	ShiftMorning ShiftKind = "morning"
	ShiftMiddle  ShiftKind = "middle"
	ShiftEvening ShiftKind = "evening"
)

// ShiftKinds in display order: morning < middle < evening.
var ShiftKinds = []ShiftKind{ShiftMorning, ShiftMiddle, ShiftEvening}

func (k ShiftKind) Valid() bool {
	switch k {
	case ShiftMorning, ShiftMiddle, ShiftEvening:
		return true
	}
	return false
}

// Order gives the fixed sort position of the shift within a day.
// Alphabetical order would put evening first, so ordering is explicit.
func (k ShiftKind) Order() int {
	switch k {
	case ShiftMorning:
		return 0
	case ShiftMiddle:
		return 1
	case ShiftEvening:
		return 2
	}
	return 3
}

// ShiftAssignment is one canonical row: barista BaristaID works shift Kind
// on Date. The triple (Date, Kind, BaristaID) is unique in the store.
type ShiftAssignment struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Kind      ShiftKind `json:"shift"`
	BaristaID int64     `json:"baristaId"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignmentRow is an assignment joined with its barista summary, the shape
// reads return so consumers can render names and avatars without a second
// query.
type AssignmentRow struct {
	ShiftAssignment
	BaristaName   string `json:"baristaName"`
	BaristaRole   string `json:"baristaRole"`
	BaristaAvatar string `json:"baristaAvatar"`
}

// ShiftRoster holds the barista ids per shift kind for a single date.
// Sequences are always non-nil so empty shifts serialize as [] and not null.
type ShiftRoster struct {
	Morning []int64 `json:"morning"`
	Middle  []int64 `json:"middle"`
	Evening []int64 `json:"evening"`
}

func NewShiftRoster() *ShiftRoster {
	return &ShiftRoster{
		Morning: make([]int64, 0),
		Middle:  make([]int64, 0),
		Evening: make([]int64, 0),
	}
}

// IDs returns the sequence for the given shift kind.
func (sr *ShiftRoster) IDs(kind ShiftKind) []int64 {
	switch kind {
	case ShiftMorning:
		return sr.Morning
	case ShiftMiddle:
		return sr.Middle
	case ShiftEvening:
		return sr.Evening
	}
	return nil
}

func (sr *ShiftRoster) Append(kind ShiftKind, baristaID int64) {
	switch kind {
	case ShiftMorning:
		sr.Morning = append(sr.Morning, baristaID)
	case ShiftMiddle:
		sr.Middle = append(sr.Middle, baristaID)
	case ShiftEvening:
		sr.Evening = append(sr.Evening, baristaID)
	}
}

// GroupedSchedule is the derived date-indexed view consumed by the front end:
// ISO date string -> roster per shift kind. Dates without assignments are
// absent, a missing key means an empty day.
type GroupedSchedule map[string]*ShiftRoster
