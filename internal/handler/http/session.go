package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/utils"
	"github.com/snetdev/profile-core/models"
)

// sessionRequest carries the user credential exchanged for a session token.
type sessionRequest struct {
	User *models.UserCredential `json:"user"`
}

// sessionResponse returns the signed session token to the caller.
type sessionResponse struct {
	SessionToken string `json:"session_token"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.ResolveUser(ctx, req.User, true)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.CreateSession(ctx, *user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("session issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.SignedString))
	utils.WriteJSON(w, sessionResponse{SessionToken: session.SignedString}, http.StatusOK)
}
