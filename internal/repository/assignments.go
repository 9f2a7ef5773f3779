package repository

import (
	"context"
	"time"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

// GetAssignments returns assignments joined with their barista summary for
// every date in [from, to]. Rows come back ordered by date, then shift kind in
// day order (morning, middle, evening), then barista name, so the result is
// deterministic for display.
func (r *Repository) GetAssignments(from, to time.Time) ([]*domain.AssignmentRow, error) {
	query := `
		SELECT
			s.id,
			s.schedule_date,
			s.shift_type,
			s.barista_id,
			b.name,
			b.role,
			b.avatar
		FROM schedules s
		JOIN baristas b ON s.barista_id = b.id
		WHERE s.schedule_date BETWEEN $1 AND $2
		ORDER BY
			s.schedule_date,
			CASE s.shift_type WHEN 'morning' THEN 0 WHEN 'middle' THEN 1 ELSE 2 END,
			b.name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	assignments := make([]*domain.AssignmentRow, 0)
	for rows.Next() {
		row := &domain.AssignmentRow{}
		dst := []any{&row.ID, &row.Date, &row.Kind, &row.BaristaID, &row.BaristaName, &row.BaristaRole, &row.BaristaAvatar}
		if err := rows.Scan(dst...); err != nil {
			return nil, storeErr(err)
		}
		assignments = append(assignments, row)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return assignments, nil
}

// ReplaceAssignmentSet substitutes the whole roster for one (date, shift) key
// in a single transaction: delete everything at the key, then insert one row
// per barista id. A duplicate id in the input would trip the uniqueness
// constraint, so inserts use ON CONFLICT DO NOTHING and the duplicate is
// silently skipped. An empty id list just clears the shift.
func (r *Repository) ReplaceAssignmentSet(date time.Time, kind domain.ShiftKind, baristaIDs []int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		DELETE FROM schedules
		WHERE schedule_date = $1 AND shift_type = $2
	`
	if _, err := tx.ExecContext(ctx, query, date, kind); err != nil {
		return storeErr(err)
	}

	for _, baristaID := range baristaIDs {
		query = `
			INSERT INTO schedules (schedule_date, shift_type, barista_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (schedule_date, shift_type, barista_id) DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, date, kind, baristaID); err != nil {
			return storeErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storeErr(err)
	}

	return nil
}

// ClearDate deletes every assignment on the date across all three shifts.
func (r *Repository) ClearDate(date time.Time) error {
	query := `
		DELETE FROM schedules WHERE schedule_date = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, date); err != nil {
		return storeErr(err)
	}

	return nil
}
