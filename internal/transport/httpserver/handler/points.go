package handler

import (
	"net/http"
	"strings"

	authdomain "kidpoints/internal/domain/auth"
	"kidpoints/internal/transport/httpserver/middleware"
)

type pointsResponse struct {
	KidID  string `json:"kid_id"`
	Points int    `json:"points"`
}

// GetPoints reports a kid's current balance. A kid always reads its own; a
// parent must name an owned kid explicitly.
func (h *Handlers) GetPoints(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var kidID string
	switch identity.Role {
	case authdomain.RoleKid:
		kidID = identity.KidID
	case authdomain.RoleParent:
		kidID = strings.TrimSpace(r.URL.Query().Get("kid_id"))
		if kidID == "" {
			writeError(w, http.StatusBadRequest, "invalid_request", "kid_id is required for parent")
			return
		}
		owned, err := h.Kids.IsOwnedKid(r.Context(), kidID, identity.UserID)
		if err != nil {
			h.log.InternalError("points.get: ownership check failed", err, "parent_id", identity.UserID, "kid_id", kidID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		if !owned {
			h.log.Warn("points.get: unknown kid for parent", "parent_id", identity.UserID, "kid_id", kidID)
			writeError(w, http.StatusBadRequest, "unknown_kid", "unknown kid id for this parent")
			return
		}
	default:
		writeError(w, http.StatusForbidden, "forbidden", "insufficient role")
		return
	}

	balance, err := h.Points.Balance(r.Context(), kidID)
	if err != nil {
		h.log.InternalError("points.get: balance failed", err, "kid_id", kidID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, pointsResponse{KidID: kidID, Points: balance})
}
