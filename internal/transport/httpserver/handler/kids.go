package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	kidsdomain "kidpoints/internal/domain/kids"
	"kidpoints/internal/transport/httpserver/middleware"
)

type kidRequest struct {
	DisplayName string `json:"display_name"`
}

type kidResponse struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *Handlers) ListKids(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	kids, err := h.Kids.List(r.Context(), identity.UserID)
	if err != nil {
		h.log.InternalError("kids.list: list failed", err, "parent_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]kidResponse, 0, len(kids))
	for _, kid := range kids {
		response = append(response, toKidResponse(kid))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateKid(w http.ResponseWriter, r *http.Request) {
	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	kid, err := h.Kids.Create(r.Context(), identity.UserID, req.DisplayName)
	if err != nil {
		if errors.Is(err, kidsdomain.ErrDisplayNameRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "display_name is required")
			return
		}
		h.log.InternalError("kids.create: create failed", err, "parent_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toKidResponse(*kid))
}

func (h *Handlers) RenameKid(w http.ResponseWriter, r *http.Request) {
	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	kidID := strings.TrimSpace(chi.URLParam(r, "kid_id"))
	if kidID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "kid_id is required")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	kid, err := h.Kids.Rename(r.Context(), kidID, identity.UserID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, kidsdomain.ErrDisplayNameRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "display_name is required")
		case errors.Is(err, kidsdomain.ErrKidNotFound):
			h.log.BusinessError("kids.rename: kid not found for parent", err, "parent_id", identity.UserID, "kid_id", kidID)
			writeError(w, http.StatusNotFound, "kid_not_found", "kid not found for this parent")
		default:
			h.log.InternalError("kids.rename: rename failed", err, "parent_id", identity.UserID, "kid_id", kidID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toKidResponse(*kid))
}

func toKidResponse(kid kidsdomain.Kid) kidResponse {
	return kidResponse{
		ID:          kid.ID,
		ParentID:    kid.ParentID,
		DisplayName: kid.DisplayName,
		CreatedAt:   kid.CreatedAt,
	}
}
