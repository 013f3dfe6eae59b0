package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It handles API token lookup against the "tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// FindOne retrieves the token with the given id.
//
// Error handling:
//   - No matching row → [ErrTokenNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *tokenRepository) FindOne(ctx context.Context, tokenID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := r.db.QueryRowContext(ctx, findTokenByID, tokenID)

	if err := row.Scan(&token.TokenID, &token.UserID, &token.KeyHash, &token.Type, &token.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Token{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindOne").Int64("token_id", tokenID).Msg("error: scanning error")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}
