package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/service"
	"github.com/snetdev/profile-core/internal/utils"
	"github.com/snetdev/profile-core/models"
)

// profileWriteRequest is the envelope for profile creation and editing.
// Credentials travel in the body alongside the draft; the recaptcha response
// is only consulted on creation.
type profileWriteRequest struct {
	Token     *models.TokenCredential `json:"token"`
	Recaptcha *string                 `json:"recaptcha"`
	Profile   models.ProfileDraft     `json:"profile"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, err := h.resolveViewer(r, tokenCredentialFromQuery(r), service.TokenOptional)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile.ToAPI(viewer), http.StatusOK)
}

func (h *Handler) getProfilesIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		log.Error().Msg("batch profile request without ids")
		http.Error(w, "ids query parameter is required", http.StatusBadRequest)
		return
	}
	ids := strings.Split(idsParam, ",")

	viewer, err := h.resolveViewer(r, tokenCredentialFromQuery(r), service.TokenOptional)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profiles, err := h.services.ProfileService.GetIn(ctx, ids)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toAPIProfiles(profiles, viewer), http.StatusOK)
}

func (h *Handler) getOwnProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, err := h.resolveViewer(r, tokenCredentialFromQuery(r), service.TokenRequired)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profiles, err := h.services.ProfileService.GetOwn(ctx, viewer.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toAPIProfiles(profiles, viewer), http.StatusOK)
}

// getUserProfiles lists any user's profiles. Master-only: ordinary tokens
// and sessions are rejected before the lookup.
func (h *Handler) getUserProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	viewer, err := h.resolveViewer(r, tokenCredentialFromQuery(r), service.MasterTokenRequired)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	profiles, err := h.services.ProfileService.GetOwn(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toAPIProfiles(profiles, viewer), http.StatusOK)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req profileWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResolveRecaptcha(ctx, req.Recaptcha, h.recaptchaRequired); err != nil {
		h.writeError(w, r, err)
		return
	}

	actor, err := h.resolveViewer(r, req.Token, service.TokenRequired)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Register(ctx, actor, req.Profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile.ToAPI(actor), http.StatusCreated)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req profileWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	actor, err := h.resolveViewer(r, req.Token, service.TokenRequired)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Edit(ctx, actor, chi.URLParam(r, "id"), req.Profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile.ToAPI(actor), http.StatusOK)
}

func toAPIProfiles(profiles []models.Profile, viewer *models.User) []models.APIProfile {
	apiProfiles := make([]models.APIProfile, 0, len(profiles))
	for _, profile := range profiles {
		apiProfiles = append(apiProfiles, profile.ToAPI(viewer))
	}
	return apiProfiles
}
