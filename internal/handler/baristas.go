package handler

import (
	"errors"
	"net/http"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/utils"
)

func (h *Handler) GetAllBaristas(w http.ResponseWriter, r *http.Request) {
	baristas, err := h.repository.ListBaristas()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "baristas listed", baristas)
}

func (h *Handler) CreateBarista(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name" validate:"required"`
		Role   string `json:"role" validate:"required"`
		Avatar string `json:"avatar" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = utils.AvatarURL(h.config.Avatar.BaseURL, req.Name, "")
	}

	barista := &domain.Barista{
		Name:   req.Name,
		Role:   req.Role,
		Avatar: avatar,
	}

	if err := h.repository.CreateBarista(barista); err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "barista created", barista)
}

func (h *Handler) UpdateBarista(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   *string `json:"name" validate:"omitempty,min=1"`
		Role   *string `json:"role" validate:"omitempty,min=1"`
		Avatar *string `json:"avatar" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	barista := r.Context().Value(BaristaCtx).(*domain.Barista)

	updated, err := h.repository.UpdateBarista(barista.ID, req.Name, req.Role, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBaristaNotFound):
			h.errorResponse(w, r, "barista not found")
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "barista updated", updated)
}

func (h *Handler) DeleteBarista(w http.ResponseWriter, r *http.Request) {
	barista := r.Context().Value(BaristaCtx).(*domain.Barista)

	if err := h.repository.DeleteBarista(barista.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.storeUnavailable(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// The store cascade has removed the barista's assignments; scrub the id
	// from any cached grouped view so a fallback read can never serve it.
	h.cache.RemoveBarista(barista.ID)

	h.publishRosterEvent(domain.RosterEvent{
		Type:    domain.EventBaristaRemoved,
		Barista: barista.Name,
	})

	h.successResponse(w, r, "barista deleted", nil)
}
