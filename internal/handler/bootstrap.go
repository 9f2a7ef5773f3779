package handler

import (
	"errors"
	"net/http"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/seed"
)

// Bootstrap ensures the backing tables exist and seeds the default roster
// when the baristas table is empty. Idempotent, safe to call repeatedly.
func (h *Handler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.EnsureSchema(); err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	seeded, err := seed.SeedDefaultRoster(h.repository, h.config.Avatar.BaseURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "database initialized", map[string]any{
		"tables": []string{"baristas", "schedules"},
		"seeded": seeded,
	})
}
