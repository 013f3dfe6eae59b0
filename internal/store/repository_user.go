package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindOne retrieves the user with the given id.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) FindOne(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(&user.UserID, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindOne").Int64("user_id", userID).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
