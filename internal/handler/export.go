package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/schedule"
)

const exportSheet = "Roster"

// ExportMonth renders the month schedule as an .xlsx workbook, one row per
// day with the crew names per shift, for printing and pinning next to the
// espresso machine.
func (h *Handler) ExportMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	monthParam := r.URL.Query().Get("month")
	if monthParam == "" {
		monthParam = now.Format(schedule.MonthLayout)
	}

	from, to, err := schedule.ParseMonth(monthParam)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	rows, err := h.repository.GetAssignments(from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// names per date and shift, in the join's name order
	names := make(map[string]map[domain.ShiftKind][]string)
	for _, row := range rows {
		dateStr := row.Date.Format(schedule.DateLayout)
		if _, exists := names[dateStr]; !exists {
			names[dateStr] = make(map[domain.ShiftKind][]string)
		}
		names[dateStr][row.Kind] = append(names[dateStr][row.Kind], row.BaristaName)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	headers := []string{"Date", "Morning", "Middle", "Evening"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	rowNum := 2
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(schedule.DateLayout)
		values := []string{dateStr}
		for _, kind := range domain.ShiftKinds {
			values = append(values, strings.Join(names[dateStr][kind], ", "))
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				h.internalServerError(w, r, err)
				return
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				h.internalServerError(w, r, err)
				return
			}
		}
		rowNum++
	}

	if err := f.SetColWidth(exportSheet, "A", "D", 24); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="roster-%s.xlsx"`, monthParam))

	if err := f.Write(w); err != nil {
		slog.Error("workbook write failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}
