package http

import (
	"net/http"
	"strconv"

	"github.com/snetdev/profile-core/internal/service"
	"github.com/snetdev/profile-core/internal/utils"
	"github.com/snetdev/profile-core/models"
)

// tokenCredentialFromQuery extracts the optional token credential carried in
// the query string. Absence of either part means no credential was supplied;
// a malformed id is treated the same way and left to the requirement check.
func tokenCredentialFromQuery(r *http.Request) *models.TokenCredential {
	query := r.URL.Query()

	idParam := query.Get("token_id")
	key := query.Get("token_key")
	if idParam == "" || key == "" {
		return nil
	}

	tokenID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return nil
	}

	return &models.TokenCredential{TokenID: tokenID, Key: key}
}

// resolveViewer turns the request's credentials into a user identity under
// the given requirement. An explicit token credential wins; without one, a
// bearer session token from the Authorization header is accepted for
// non-master calls. With neither present the decision falls through to
// ResolveToken, which enforces the requirement on the absent credential.
func (h *Handler) resolveViewer(r *http.Request, credential *models.TokenCredential, requirement service.TokenRequirement) (*models.User, error) {
	ctx := r.Context()

	if credential == nil {
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				return nil, service.ErrSessionIsExpiredOrInvalid
			}

			session, err := h.services.AuthService.ParseSession(ctx, tokenString)
			if err != nil {
				return nil, err
			}

			// Sessions are user-scoped and never carry master privileges.
			if requirement == service.MasterTokenRequired {
				return nil, service.ErrMasterTokenRequired
			}

			return &models.User{UserID: session.UserID}, nil
		}
	}

	token, err := h.services.AuthService.ResolveToken(ctx, credential, requirement)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	return &models.User{UserID: token.UserID}, nil
}
