package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func assignmentColumns() []string {
	return []string{"id", "schedule_date", "shift_type", "barista_id", "name", "role", "avatar"}
}

func TestGetAssignmentsJoinedAndOrdered(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	day := date("2025-03-05")

	// the mock returns rows in whatever order it is given, so the
	// morning-before-evening ordering is pinned by matching the full query
	// text, ORDER BY clause included
	rows := sqlmock.NewRows(assignmentColumns()).
		AddRow(int64(10), day, "morning", int64(1), "Budi", domain.RoleHeadBarista, "a1").
		AddRow(int64(11), day, "morning", int64(2), "Siti", domain.RoleSeniorBarista, "a2").
		AddRow(int64(12), day, "evening", int64(3), "Andi", domain.RoleBarista, "a3")

	mock.ExpectQuery(`SELECT s.id, s.schedule_date, s.shift_type, s.barista_id, b.name, b.role, b.avatar
		FROM schedules s
		JOIN baristas b ON s.barista_id = b.id
		WHERE s.schedule_date BETWEEN $1 AND $2
		ORDER BY s.schedule_date, CASE s.shift_type WHEN 'morning' THEN 0 WHEN 'middle' THEN 1 ELSE 2 END, b.name`).
		WithArgs(day, day).
		WillReturnRows(rows)

	assignments, err := repo.GetAssignments(day, day)
	require.NoError(t, err)
	require.Len(t, assignments, 3)

	require.Equal(t, "Budi", assignments[0].BaristaName)
	require.Equal(t, domain.ShiftMorning, assignments[0].Kind)
	require.Equal(t, "Siti", assignments[1].BaristaName)
	require.Equal(t, "Andi", assignments[2].BaristaName)
	require.Equal(t, domain.ShiftEvening, assignments[2].Kind)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAssignmentsStoreUnavailable(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT s.id, s.schedule_date,`).
		WillReturnError(errors.New("dial tcp: connection refused"))

	_, err := repo.GetAssignments(date("2025-03-01"), date("2025-03-31"))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func expectReplace(mock sqlmock.Sqlmock, day time.Time, kind domain.ShiftKind, ids []int64) {
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM schedules WHERE schedule_date = $1 AND shift_type = $2`).
		WithArgs(day, string(kind)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	for _, id := range ids {
		mock.ExpectExec(`INSERT INTO schedules (schedule_date, shift_type, barista_id) VALUES ($1, $2, $3) ON CONFLICT (schedule_date, shift_type, barista_id) DO NOTHING`).
			WithArgs(day, string(kind), id).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()
}

func TestReplaceAssignmentSet(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	day := date("2025-03-05")
	expectReplace(mock, day, domain.ShiftMorning, []int64{1, 2})

	require.NoError(t, repo.ReplaceAssignmentSet(day, domain.ShiftMorning, []int64{1, 2}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAssignmentSetTwiceIsIdempotent(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	day := date("2025-03-05")

	// the second replace deletes what the first inserted and inserts the same
	// set again, so the stored state is {1, 2} either way, never a union
	expectReplace(mock, day, domain.ShiftMorning, []int64{1, 2})
	expectReplace(mock, day, domain.ShiftMorning, []int64{1, 2})

	require.NoError(t, repo.ReplaceAssignmentSet(day, domain.ShiftMorning, []int64{1, 2}))
	require.NoError(t, repo.ReplaceAssignmentSet(day, domain.ShiftMorning, []int64{1, 2}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAssignmentSetEmptyClearsShift(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	day := date("2025-03-05")
	expectReplace(mock, day, domain.ShiftEvening, nil)

	require.NoError(t, repo.ReplaceAssignmentSet(day, domain.ShiftEvening, []int64{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAssignmentSetRollsBackOnFailure(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	day := date("2025-03-05")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM schedules WHERE schedule_date = $1 AND shift_type = $2`).
		WithArgs(day, string(domain.ShiftMorning)).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	err := repo.ReplaceAssignmentSet(day, domain.ShiftMorning, []int64{1})
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearDate(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	day := date("2025-03-05")
	mock.ExpectExec(`DELETE FROM schedules WHERE schedule_date = $1`).
		WithArgs(day).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, repo.ClearDate(day))
	require.NoError(t, mock.ExpectationsWereMet())
}
