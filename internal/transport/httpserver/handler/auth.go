package handler

import (
	"errors"
	"net/http"
	"strings"

	authdomain "kidpoints/internal/domain/auth"
	kidsdomain "kidpoints/internal/domain/kids"
	"kidpoints/internal/transport/httpserver/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type kidSessionRequest struct {
	KidID string `json:"kid_id"`
}

type kidSessionResponse struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	KidID       string `json:"kid_id"`
	DisplayName string `json:"display_name"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.login: invalid credentials", err, "username", req.Username)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
			return
		}
		h.log.InternalError("auth.login: login failed", err, "username", req.Username)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		Role:  string(authdomain.RoleParent),
	})
}

// KidSession mints an independent Kid credential for a kid the calling parent
// owns. The parent token presented here stays valid.
func (h *Handlers) KidSession(w http.ResponseWriter, r *http.Request) {
	var req kidSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.KidID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "kid_id is required")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	session, err := h.Auth.MintKidSession(r.Context(), identity.UserID, req.KidID)
	if err != nil {
		if errors.Is(err, kidsdomain.ErrKidNotFound) {
			h.log.BusinessError("auth.kid_session: kid not found for parent", err, "parent_id", identity.UserID, "kid_id", req.KidID)
			writeError(w, http.StatusNotFound, "kid_not_found", "kid not found for this parent")
			return
		}
		h.log.InternalError("auth.kid_session: mint failed", err, "parent_id", identity.UserID, "kid_id", req.KidID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, kidSessionResponse{
		Token:       session.Token,
		Role:        string(authdomain.RoleKid),
		KidID:       session.KidID,
		DisplayName: session.DisplayName,
	})
}
