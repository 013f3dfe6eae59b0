package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/snetdev/profile-core/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT with the
// given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer string, userID int64, sessionDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || sessionDuration == 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{Token: token, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates the given session JWT string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Returns the parsed session model or an error if validation fails, claims
// are missing, or the subject cannot be parsed.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Session{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if userIDStr == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Session{Token: token, UserID: userID, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token value from an "Authorization" header
// of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
