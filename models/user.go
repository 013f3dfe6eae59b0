package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [User.Auth] when the supplied password
// does not match the stored hash. Callers should use [errors.Is] to match it.
var ErrPasswordMismatch = errors.New("wrong password")

// User represents an account entity used for authentication and profile
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Auth verifies the supplied plain-text password against the stored bcrypt
// hash. Returns ErrPasswordMismatch on any comparison failure so that
// callers cannot distinguish a malformed hash from a wrong password.
func (u *User) Auth(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
