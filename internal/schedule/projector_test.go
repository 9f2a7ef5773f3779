package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/schedule"
)

func row(date string, kind domain.ShiftKind, baristaID int64) *domain.AssignmentRow {
	t, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &domain.AssignmentRow{
		ShiftAssignment: domain.ShiftAssignment{Date: t, Kind: kind, BaristaID: baristaID},
	}
}

func TestProjectGroupsByDateAndShift(t *testing.T) {
	rows := []*domain.AssignmentRow{
		row("2025-01-01", domain.ShiftMorning, 1),
		row("2025-01-01", domain.ShiftMorning, 2),
		row("2025-01-02", domain.ShiftEvening, 3),
	}

	grouped := schedule.Project(rows)

	require.Len(t, grouped, 2)

	jan1 := grouped["2025-01-01"]
	require.NotNil(t, jan1)
	require.Equal(t, []int64{1, 2}, jan1.Morning)
	require.Empty(t, jan1.Middle)
	require.Empty(t, jan1.Evening)

	jan2 := grouped["2025-01-02"]
	require.NotNil(t, jan2)
	require.Empty(t, jan2.Morning)
	require.Empty(t, jan2.Middle)
	require.Equal(t, []int64{3}, jan2.Evening)
}

func TestProjectIsSparse(t *testing.T) {
	grouped := schedule.Project(nil)
	require.Empty(t, grouped)

	grouped = schedule.Project([]*domain.AssignmentRow{
		row("2025-01-15", domain.ShiftMiddle, 4),
	})
	require.Len(t, grouped, 1)
	_, exists := grouped["2025-01-14"]
	require.False(t, exists)
}

func TestProjectBucketsSerializeAsEmptyArrays(t *testing.T) {
	grouped := schedule.Project([]*domain.AssignmentRow{
		row("2025-01-01", domain.ShiftMorning, 1),
	})

	// unassigned shifts must be [] and not null once encoded
	roster := grouped["2025-01-01"]
	require.NotNil(t, roster.Middle)
	require.NotNil(t, roster.Evening)
}

func TestFilterBaristaRemovesEveryOccurrence(t *testing.T) {
	grouped := schedule.Project([]*domain.AssignmentRow{
		row("2025-01-01", domain.ShiftMorning, 1),
		row("2025-01-01", domain.ShiftMorning, 2),
		row("2025-01-01", domain.ShiftEvening, 1),
		row("2025-01-03", domain.ShiftMiddle, 1),
		row("2025-01-03", domain.ShiftMiddle, 3),
	})

	filtered := schedule.FilterBarista(grouped, 1)

	require.Equal(t, []int64{2}, filtered["2025-01-01"].Morning)
	require.Empty(t, filtered["2025-01-01"].Evening)
	require.Equal(t, []int64{3}, filtered["2025-01-03"].Middle)

	// the original grouping is untouched
	require.Equal(t, []int64{1, 2}, grouped["2025-01-01"].Morning)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		lastDay int
	}{
		{"january", 2025, time.January, 31},
		{"february", 2025, time.February, 28},
		{"february leap year", 2024, time.February, 29},
		{"april", 2025, time.April, 30},
		{"december", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := schedule.MonthBounds(tt.year, tt.month)
			require.Equal(t, 1, first.Day())
			require.Equal(t, tt.month, first.Month())
			require.Equal(t, tt.lastDay, last.Day())
			require.Equal(t, tt.month, last.Month())
		})
	}
}

func TestParseMonth(t *testing.T) {
	first, last, err := schedule.ParseMonth("2025-02")
	require.NoError(t, err)
	require.Equal(t, "2025-02-01", first.Format(schedule.DateLayout))
	require.Equal(t, "2025-02-28", last.Format(schedule.DateLayout))

	_, _, err = schedule.ParseMonth("2025/02")
	require.Error(t, err)

	_, _, err = schedule.ParseMonth("")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2025-03-05")
	require.NoError(t, err)
	require.Equal(t, 5, d.Day())

	_, err = schedule.ParseDate("05-03-2025")
	require.Error(t, err)
}
