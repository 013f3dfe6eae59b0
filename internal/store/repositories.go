package store

import (
	"github.com/snetdev/profile-core/internal/logger"
)

// Repositories bundles every repository the service layer consumes.
type Repositories struct {
	ProfileRepository ProfileRepository
	UserRepository    UserRepository
	TokenRepository   TokenRepository
}

// NewRepositories wires all repositories onto a single database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		ProfileRepository: NewProfileRepository(db, logger),
		UserRepository:    NewUserRepository(db, logger),
		TokenRepository:   NewTokenRepository(db, logger),
	}
}
