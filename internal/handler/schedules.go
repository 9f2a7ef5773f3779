package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/schedule"
)

// scheduleRange resolves the date/month query params into a date range.
// A single date becomes a one-day range; no params defaults to the current
// calendar month.
func scheduleRange(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := schedule.ParseDate(dateParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return date, date, nil
	}

	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		return schedule.ParseMonth(monthParam)
	}

	first, last := schedule.MonthBounds(now.Year(), now.Month())
	return first, last, nil
}

// GetSchedule serves the grouped view for a date, a month, or the current
// month. When the store is unreachable it degrades to the last grouped view
// cached for the same range, and failing that to an empty grouping; a
// transient store failure never surfaces as an error on this path.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	from, to, err := scheduleRange(r, time.Now())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	rows, err := h.repository.GetAssignments(from, to)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			if cached, ok := h.cache.Get(from, to); ok {
				h.successResponse(w, r, "serving last known schedule", cached)
				return
			}
			h.successResponse(w, r, "schedule unavailable", make(domain.GroupedSchedule))
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	grouped := schedule.Project(rows)
	h.cache.Set(from, to, grouped)

	h.successResponse(w, r, "schedule fetched", grouped)
}

// ReplaceShiftRoster is the sole write path for assignments: it atomically
// substitutes the whole barista set for one (date, shift) key and then
// invalidates the cached grouped views.
func (h *Handler) ReplaceShiftRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date       string   `json:"date" validate:"required"`
		Shift      string   `json:"shift" validate:"required,oneof=morning middle evening"`
		BaristaIDs *[]int64 `json:"baristaIds" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	kind := domain.ShiftKind(req.Shift)
	baristaIDs := *req.BaristaIDs

	if err := h.repository.ReplaceAssignmentSet(date, kind, baristaIDs); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "schedules_barista_id_fkey":
			h.errorResponse(w, r, "one of the barista ids does not exist")
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.cache.Invalidate()

	h.publishRosterEvent(domain.RosterEvent{
		Type:       domain.EventShiftReplaced,
		Date:       req.Date,
		Shift:      kind,
		BaristaIDs: baristaIDs,
	})

	h.successResponse(w, r, "shift roster replaced", map[string]any{
		"date":       req.Date,
		"shift":      kind,
		"baristaIds": baristaIDs,
	})
}

// ClearDate removes every assignment on the date across all three shifts.
func (h *Handler) ClearDate(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.errorResponse(w, r, "date is required")
		return
	}

	date, err := schedule.ParseDate(dateParam)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.ClearDate(date); err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.cache.Invalidate()

	h.publishRosterEvent(domain.RosterEvent{
		Type: domain.EventDateCleared,
		Date: dateParam,
	})

	h.successResponse(w, r, "schedule cleared", nil)
}
