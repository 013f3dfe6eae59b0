package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrTokenKeyMismatch is returned by [Token.Auth] when the supplied key does
// not match the stored key hash.
var ErrTokenKeyMismatch = errors.New("wrong token key")

// TokenType classifies an API token by privilege level.
type TokenType string

const (
	// TokenTypeMaster marks a token allowed to call master-only endpoints.
	TokenTypeMaster TokenType = "master"

	// TokenTypeGeneral marks an ordinary token without elevated privileges.
	TokenTypeGeneral TokenType = "general"
)

// Token represents an API access token issued to a user. The token secret
// itself is never stored; only its keyed HMAC-SHA256 digest is.
type Token struct {
	// TokenID is the internal unique identifier of the token. API callers
	// present it together with the token key.
	TokenID int64 `json:"id"`

	// UserID references the user the token was issued to.
	UserID int64 `json:"-"`

	// KeyHash is the hex-encoded HMAC-SHA256 digest of the token key.
	// Never exposed via JSON.
	KeyHash string `json:"-"`

	// Type is the privilege level of the token.
	Type TokenType `json:"type"`

	// CreatedAt is the timestamp when the token was issued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// Auth verifies the supplied plain-text token key against the stored digest
// using the server-side hash key. Returns ErrTokenKeyMismatch on mismatch.
func (t *Token) Auth(key, hashKey string) error {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(key))
	digest := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(digest), []byte(t.KeyHash)) {
		return ErrTokenKeyMismatch
	}
	return nil
}

// IsMaster reports whether the token carries master privileges.
func (t *Token) IsMaster() bool {
	return t.Type == TokenTypeMaster
}
