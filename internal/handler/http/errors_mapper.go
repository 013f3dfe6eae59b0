package http

import (
	"errors"
	"net/http"

	"github.com/snetdev/profile-core/internal/adapter"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/service"
	"github.com/snetdev/profile-core/internal/store"
	"github.com/snetdev/profile-core/internal/validators"
	"github.com/snetdev/profile-core/models"
)

// errorStatusMap translates domain errors into HTTP statuses. Credential
// lookup failures (unknown user or token id) surface as 401 rather than 404
// so that existence of credentials is not probeable.
var errorStatusMap = map[error]int{
	service.ErrAuthenticationRequired:    http.StatusUnauthorized,
	service.ErrSessionIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrMasterTokenRequired:       http.StatusForbidden,
	service.ErrNotProfileOwner:           http.StatusForbidden,

	models.ErrTokenKeyMismatch: http.StatusUnauthorized,
	models.ErrPasswordMismatch: http.StatusUnauthorized,

	validators.ErrInvalidFormat: http.StatusBadRequest,

	adapter.ErrCaptchaRejected:         http.StatusForbidden,
	adapter.ErrVerificationUnavailable: http.StatusBadGateway,

	store.ErrProfileNotFound: http.StatusNotFound,
	store.ErrScreenNameTaken: http.StatusConflict,
	store.ErrUserNotFound:    http.StatusUnauthorized,
	store.ErrTokenNotFound:   http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Format violations
// carry their operator-configured message to the caller; everything else
// answers with the bare status text so internals are not leaked.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var formatErr *validators.FormatError
	if errors.As(err, &formatErr) {
		log.Err(err).Str("field", formatErr.Field).Msg("request failed format validation")
		http.Error(w, formatErr.Message, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Err(err).Msg("request rejected")
	}
	http.Error(w, http.StatusText(status), status)
}
