package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/models"
)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tokenRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestTokenFindOne_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"token_id", "user_id", "key_hash", "type", "created_at"}).
		AddRow(int64(3), int64(7), "deadbeef", "master", now)

	mock.ExpectQuery("SELECT token_id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	token, err := repo.FindOne(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.TokenID != 3 {
		t.Errorf("expected TokenID=3, got %d", token.TokenID)
	}
	if token.Type != models.TokenTypeMaster {
		t.Errorf("expected master token, got %s", token.Type)
	}
}

func TestTokenFindOne_NotFound(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token_id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindOne(context.Background(), 404)
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}
