package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	rewardsdomain "kidpoints/internal/domain/rewards"
	"kidpoints/internal/transport/httpserver/middleware"
)

type createRewardRequest struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type rewardResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type redemptionResponse struct {
	ID         int64     `json:"id"`
	KidID      string    `json:"kid_id"`
	RewardID   int64     `json:"reward_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

type redeemResponse struct {
	KidID      string             `json:"kid_id"`
	NewPoints  int                `json:"new_points"`
	Redemption redemptionResponse `json:"redemption"`
}

func (h *Handlers) ListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.Rewards.List(r.Context())
	if err != nil {
		h.log.InternalError("rewards.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]rewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		response = append(response, rewardResponse{ID: reward.ID, Name: reward.Name, Cost: reward.Cost})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req createRewardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	reward, err := h.Rewards.Create(r.Context(), req.Name, req.Cost)
	if err != nil {
		switch {
		case errors.Is(err, rewardsdomain.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		case errors.Is(err, rewardsdomain.ErrInvalidCost):
			writeError(w, http.StatusBadRequest, "invalid_request", "cost must be non-negative")
		default:
			h.log.InternalError("rewards.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, rewardResponse{ID: reward.ID, Name: reward.Name, Cost: reward.Cost})
}

func (h *Handlers) RedeemReward(w http.ResponseWriter, r *http.Request) {
	rewardID, err := strconv.ParseInt(chi.URLParam(r, "reward_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid reward id")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Rewards.Redeem(r.Context(), identity.KidID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, rewardsdomain.ErrRewardNotFound):
			h.log.BusinessError("rewards.redeem: reward not found", err, "kid_id", identity.KidID, "reward_id", rewardID)
			writeError(w, http.StatusNotFound, "reward_not_found", "reward not found")
		case errors.Is(err, rewardsdomain.ErrNotEnoughPoints):
			h.log.BusinessError("rewards.redeem: not enough points", err, "kid_id", identity.KidID, "reward_id", rewardID)
			writeError(w, http.StatusBadRequest, "not_enough_points", "not enough points")
		default:
			h.log.InternalError("rewards.redeem: redeem failed", err, "kid_id", identity.KidID, "reward_id", rewardID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, redeemResponse{
		KidID:     result.KidID,
		NewPoints: result.NewPoints,
		Redemption: redemptionResponse{
			ID:         result.Redemption.ID,
			KidID:      result.Redemption.KidID,
			RewardID:   result.Redemption.RewardID,
			RedeemedAt: result.Redemption.RedeemedAt,
		},
	})
}
