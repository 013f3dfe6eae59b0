package service

import (
	"context"
	"fmt"
	"time"

	"github.com/snetdev/profile-core/internal/adapter"
	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/store"
	"github.com/snetdev/profile-core/internal/utils"
	"github.com/snetdev/profile-core/models"
)

// authService is the concrete implementation of AuthService.
// Each resolver is a single linear decision sequence: presence check,
// store lookup, entity authentication, privilege check. There is no shared
// state between calls.
type authService struct {
	// userRepository looks up accounts for password resolution.
	userRepository store.UserRepository

	// tokenRepository looks up API tokens for token resolution.
	tokenRepository store.TokenRepository

	// recaptchaVerifier performs the outbound CAPTCHA verification call.
	recaptchaVerifier adapter.RecaptchaVerifier

	// tokenHashKey is the HMAC secret token keys are hashed with. Must match
	// the value used when the tokens were issued.
	tokenHashKey string

	// sessionSignKey is the HMAC secret used to sign and verify session JWTs.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued session
	// token. Tokens whose issuer differs are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and verifier, with security parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, recaptchaVerifier adapter.RecaptchaVerifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		tokenRepository:   tokenRepository,
		recaptchaVerifier: recaptchaVerifier,
		tokenHashKey:      cfg.TokenHashKey,
		sessionSignKey:    cfg.SessionSignKey,
		sessionIssuer:     cfg.SessionIssuer,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// ResolveToken authenticates the supplied token credential under the given
// requirement.
//
// A nil credential resolves to nil when the requirement is TokenOptional;
// under any stricter requirement it fails with ErrAuthenticationRequired.
// No store lookup happens for an absent credential. A present credential is
// looked up by id (absence propagates store.ErrTokenNotFound), its key is
// verified against the stored digest (mismatch propagates
// models.ErrTokenKeyMismatch), and under MasterTokenRequired a non-master
// token fails with ErrMasterTokenRequired.
func (a *authService) ResolveToken(ctx context.Context, credential *models.TokenCredential, requirement TokenRequirement) (*models.Token, error) {
	log := logger.FromContext(ctx)

	if credential == nil {
		if requirement == TokenOptional {
			return nil, nil
		}
		return nil, ErrAuthenticationRequired
	}

	token, err := a.tokenRepository.FindOne(ctx, credential.TokenID)
	if err != nil {
		log.Err(err).Int64("token_id", credential.TokenID).Msg("token search by id failed")
		return nil, fmt.Errorf("token search by id failed: %w", err)
	}

	if err := token.Auth(credential.Key, a.tokenHashKey); err != nil {
		log.Err(err).Int64("token_id", token.TokenID).Msg("token key verification failed")
		return nil, err
	}

	if requirement == MasterTokenRequired && !token.IsMaster() {
		log.Error().Int64("token_id", token.TokenID).Msg("non-master token on a master-only call")
		return nil, ErrMasterTokenRequired
	}

	return &token, nil
}

// ResolveUser authenticates the supplied user credential.
//
// A nil credential resolves to nil unless required, in which case it fails
// with ErrAuthenticationRequired. A present credential is looked up by id
// (absence propagates store.ErrUserNotFound) and the password is verified
// against the stored hash (mismatch propagates models.ErrPasswordMismatch).
func (a *authService) ResolveUser(ctx context.Context, credential *models.UserCredential, required bool) (*models.User, error) {
	log := logger.FromContext(ctx)

	if credential == nil {
		if !required {
			return nil, nil
		}
		return nil, ErrAuthenticationRequired
	}

	user, err := a.userRepository.FindOne(ctx, credential.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", credential.UserID).Msg("user search by id failed")
		return nil, fmt.Errorf("user search by id failed: %w", err)
	}

	if err := user.Auth(credential.Password); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user password verification failed")
		return nil, err
	}

	return &user, nil
}

// ResolveRecaptcha verifies the supplied CAPTCHA response.
//
// When not required the call succeeds unconditionally and any supplied
// value is ignored, no outbound call is made. When required, a missing
// response fails with ErrAuthenticationRequired; a present response is
// verified with exactly one outbound call, propagating the verifier's
// rejection and availability errors.
func (a *authService) ResolveRecaptcha(ctx context.Context, response *string, required bool) error {
	if !required {
		return nil
	}

	if response == nil {
		return ErrAuthenticationRequired
	}

	return a.recaptchaVerifier.Verify(ctx, *response)
}

// CreateSession issues a signed session JWT for the given user.
//
// The token is signed with the configured session key, carries the
// configured issuer, and expires after the configured duration.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	session, err := utils.GenerateSessionToken(a.sessionIssuer, user.UserID, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// ParseSession validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrSessionIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	return session, nil
}
