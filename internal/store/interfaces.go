package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/snetdev/profile-core/models"
)

// ProfileRepository is the data-access contract for profile records.
type ProfileRepository interface {
	// FindOne returns the profile with the given id, or ErrProfileNotFound.
	FindOne(ctx context.Context, profileID string) (models.Profile, error)

	// FindIn returns all profiles whose id is in ids, ordered by creation
	// date descending. If any requested id is missing the whole batch fails
	// with ErrProfileNotFound.
	FindIn(ctx context.Context, profileIDs []string) ([]models.Profile, error)

	// FindAllByUser returns all profiles owned by the given user, ordered
	// by creation date descending. An empty result is not an error.
	FindAllByUser(ctx context.Context, userID int64) ([]models.Profile, error)

	// Insert persists a newly constructed profile. A screen-name collision
	// is reported as ErrScreenNameTaken; any other persistence error is
	// propagated wrapped but unreinterpreted.
	Insert(ctx context.Context, profile models.Profile) error

	// Update persists a mutated profile by id, with the same screen-name
	// conflict semantics as Insert.
	Update(ctx context.Context, profile models.Profile) error
}

// UserRepository looks up user accounts for credential resolution.
type UserRepository interface {
	// FindOne returns the user with the given id, or ErrUserNotFound.
	FindOne(ctx context.Context, userID int64) (models.User, error)
}

// TokenRepository looks up API tokens for credential resolution.
type TokenRepository interface {
	// FindOne returns the token with the given id, or ErrTokenNotFound.
	FindOne(ctx context.Context, tokenID int64) (models.Token, error)
}
