package http

import (
	"encoding/json"
	"net/http"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "invalid JSON body")
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		Success:  true,
		UserID:   registeredUser.UserID,
		Username: registeredUser.Username,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "invalid JSON body")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Success:  true,
		UserID:   foundUser.UserID,
		Username: foundUser.Username,
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "invalid JSON body")
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("user_id", req.UserID).Msg("password changed")

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
