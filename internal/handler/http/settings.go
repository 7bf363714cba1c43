package http

import (
	"encoding/json"
	"net/http"

	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromQuery(r)
	if !ok {
		respondBadRequest(w, r, "invalid userId")
		return
	}

	settings, err := h.services.SettingsService.GetSettings(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) setCurrency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SetCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "invalid JSON body")
		return
	}

	if err := h.services.SettingsService.SetCurrency(ctx, req.UserID, req.Currency); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
