package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/store"
	"github.com/snetdev/profile-core/internal/utils"
	"github.com/snetdev/profile-core/internal/validators"
	"github.com/snetdev/profile-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ProfileRepository
// ─────────────────────────────────────────────

type mockProfileRepository struct {
	findOneFn       func(ctx context.Context, profileID string) (models.Profile, error)
	findInFn        func(ctx context.Context, profileIDs []string) ([]models.Profile, error)
	findAllByUserFn func(ctx context.Context, userID int64) ([]models.Profile, error)
	insertFn        func(ctx context.Context, profile models.Profile) error
	updateFn        func(ctx context.Context, profile models.Profile) error
}

func (m *mockProfileRepository) FindOne(ctx context.Context, profileID string) (models.Profile, error) {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, profileID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) FindIn(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	if m.findInFn != nil {
		return m.findInFn(ctx, profileIDs)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Profile, error) {
	if m.findAllByUserFn != nil {
		return m.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepository) Insert(ctx context.Context, profile models.Profile) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile models.Profile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, profile)
	}
	return nil
}

// staticRenderer makes rendered output recognizable in assertions.
type staticRenderer struct{}

func (staticRenderer) Render(text string) string {
	return "<p>" + text + "</p>"
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func defaultRules(t *testing.T) validators.Validator {
	t.Helper()
	v, err := validators.NewProfileValidator(config.Profile{
		Name:       config.FieldRule{Pattern: config.DefaultNamePattern, Message: config.DefaultNameMessage},
		Text:       config.FieldRule{Pattern: config.DefaultTextPattern, Message: config.DefaultTextMessage},
		ScreenName: config.FieldRule{Pattern: config.DefaultScreenNamePattern, Message: config.DefaultScreenNameMessage},
	})
	require.NoError(t, err)
	return v
}

func newTestProfileSvc(t *testing.T, repo *mockProfileRepository) *profileService {
	t.Helper()
	return &profileService{
		profileRepository: repo,
		validator:         defaultRules(t),
		renderer:          staticRenderer{},
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger.Nop(),
	}
}

func validDraft() models.ProfileDraft {
	return models.ProfileDraft{
		Name:       "Ada Lovelace",
		Text:       "First *programmer*.",
		ScreenName: "ada",
	}
}

var owner = &models.User{UserID: 7, Name: "ada"}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestProfileService_Create_Success(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	profile, err := svc.Create(context.Background(), owner, validDraft(), now)

	require.NoError(t, err)
	assert.NotEmpty(t, profile.ProfileID)
	assert.Equal(t, owner.UserID, profile.UserID)
	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, "First *programmer*.", profile.Text)
	assert.Equal(t, "<p>First *programmer*.</p>", profile.MDText)
	assert.Equal(t, "ada", profile.ScreenName)
	assert.Equal(t, now, profile.Date)
	assert.Equal(t, now, profile.Update)
}

func TestProfileService_Create_NoOwner(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})

	_, err := svc.Create(context.Background(), nil, validDraft(), time.Now())

	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestProfileService_Create_FirstInvalidFieldWins(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})

	// Both name and sn are invalid; the name rule is checked first.
	draft := models.ProfileDraft{Name: "", Text: "ok", ScreenName: "no spaces allowed"}

	_, err := svc.Create(context.Background(), owner, draft, time.Now())

	require.ErrorIs(t, err, validators.ErrInvalidFormat)
	var formatErr *validators.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, validators.FieldName, formatErr.Field)
	assert.Equal(t, config.DefaultNameMessage, formatErr.Message)
}

func TestProfileService_Create_InvalidScreenName(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})

	draft := validDraft()
	draft.ScreenName = "with spaces"

	_, err := svc.Create(context.Background(), owner, draft, time.Now())

	var formatErr *validators.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, validators.FieldScreenName, formatErr.Field)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestProfileService_Register_Success(t *testing.T) {
	var inserted models.Profile
	repo := &mockProfileRepository{
		insertFn: func(_ context.Context, profile models.Profile) error {
			inserted = profile
			return nil
		},
	}
	svc := newTestProfileSvc(t, repo)

	profile, err := svc.Register(context.Background(), owner, validDraft())

	require.NoError(t, err)
	assert.Equal(t, profile, inserted)
}

func TestProfileService_Register_ScreenNameTaken(t *testing.T) {
	repo := &mockProfileRepository{
		insertFn: func(_ context.Context, _ models.Profile) error {
			return store.ErrScreenNameTaken
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.Register(context.Background(), owner, validDraft())

	assert.ErrorIs(t, err, store.ErrScreenNameTaken)
}

func TestProfileService_Register_InvalidDraftSkipsInsert(t *testing.T) {
	repo := &mockProfileRepository{
		insertFn: func(_ context.Context, _ models.Profile) error {
			t.Fatal("insert must not be called for an invalid draft")
			return nil
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.Register(context.Background(), owner, models.ProfileDraft{})

	assert.ErrorIs(t, err, validators.ErrInvalidFormat)
}

// ─────────────────────────────────────────────
// ChangeData
// ─────────────────────────────────────────────

func existingProfile() models.Profile {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.Profile{
		ProfileID:  "0195f9f2-0000-7000-8000-000000000001",
		UserID:     owner.UserID,
		Name:       "Old Name",
		Text:       "old text",
		MDText:     "<p>old text</p>",
		Date:       created,
		Update:     created,
		ScreenName: "old_sn",
	}
}

func TestProfileService_ChangeData_Success(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})
	profile := existingProfile()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	err := svc.ChangeData(context.Background(), owner, &profile, validDraft(), now)

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, "First *programmer*.", profile.Text)
	assert.Equal(t, "<p>First *programmer*.</p>", profile.MDText)
	assert.Equal(t, "ada", profile.ScreenName)
	assert.Equal(t, now, profile.Update)
	assert.Equal(t, existingProfile().Date, profile.Date, "creation date is immutable")
	assert.Equal(t, existingProfile().UserID, profile.UserID, "owner is immutable")
}

func TestProfileService_ChangeData_NotOwner(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})
	profile := existingProfile()
	stranger := &models.User{UserID: 99}

	err := svc.ChangeData(context.Background(), stranger, &profile, validDraft(), time.Now())

	assert.ErrorIs(t, err, ErrNotProfileOwner)
	assert.Equal(t, existingProfile(), profile, "failed mutation must leave the profile untouched")
}

func TestProfileService_ChangeData_NilActor(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})
	profile := existingProfile()

	err := svc.ChangeData(context.Background(), nil, &profile, validDraft(), time.Now())

	assert.ErrorIs(t, err, ErrNotProfileOwner)
	assert.Equal(t, existingProfile(), profile)
}

func TestProfileService_ChangeData_InvalidDraft(t *testing.T) {
	svc := newTestProfileSvc(t, &mockProfileRepository{})
	profile := existingProfile()

	draft := validDraft()
	draft.ScreenName = "way way way too long for the rule"

	err := svc.ChangeData(context.Background(), owner, &profile, draft, time.Now())

	assert.ErrorIs(t, err, validators.ErrInvalidFormat)
	assert.Equal(t, existingProfile(), profile, "failed mutation must leave the profile untouched")
}

// ─────────────────────────────────────────────
// Edit
// ─────────────────────────────────────────────

func TestProfileService_Edit_Success(t *testing.T) {
	var updated models.Profile
	repo := &mockProfileRepository{
		findOneFn: func(_ context.Context, profileID string) (models.Profile, error) {
			assert.Equal(t, existingProfile().ProfileID, profileID)
			return existingProfile(), nil
		},
		updateFn: func(_ context.Context, profile models.Profile) error {
			updated = profile
			return nil
		},
	}
	svc := newTestProfileSvc(t, repo)

	profile, err := svc.Edit(context.Background(), owner, existingProfile().ProfileID, validDraft())

	require.NoError(t, err)
	assert.Equal(t, profile, updated)
	assert.Equal(t, "ada", updated.ScreenName)
}

func TestProfileService_Edit_NotFound(t *testing.T) {
	repo := &mockProfileRepository{
		findOneFn: func(_ context.Context, _ string) (models.Profile, error) {
			return models.Profile{}, store.ErrProfileNotFound
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.Edit(context.Background(), owner, "missing", validDraft())

	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestProfileService_Edit_NotOwnerSkipsUpdate(t *testing.T) {
	repo := &mockProfileRepository{
		findOneFn: func(_ context.Context, _ string) (models.Profile, error) {
			return existingProfile(), nil
		},
		updateFn: func(_ context.Context, _ models.Profile) error {
			t.Fatal("update must not be called for a non-owner")
			return nil
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.Edit(context.Background(), &models.User{UserID: 99}, existingProfile().ProfileID, validDraft())

	assert.ErrorIs(t, err, ErrNotProfileOwner)
}

func TestProfileService_Edit_ScreenNameConflict(t *testing.T) {
	repo := &mockProfileRepository{
		findOneFn: func(_ context.Context, _ string) (models.Profile, error) {
			return existingProfile(), nil
		},
		updateFn: func(_ context.Context, _ models.Profile) error {
			return store.ErrScreenNameTaken
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.Edit(context.Background(), owner, existingProfile().ProfileID, validDraft())

	assert.ErrorIs(t, err, store.ErrScreenNameTaken)
}

// ─────────────────────────────────────────────
// Lookups
// ─────────────────────────────────────────────

func TestProfileService_Get_Delegates(t *testing.T) {
	want := existingProfile()
	repo := &mockProfileRepository{
		findOneFn: func(_ context.Context, profileID string) (models.Profile, error) {
			assert.Equal(t, want.ProfileID, profileID)
			return want, nil
		},
	}
	svc := newTestProfileSvc(t, repo)

	got, err := svc.Get(context.Background(), want.ProfileID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_GetIn_Delegates(t *testing.T) {
	ids := []string{"a", "b"}
	repo := &mockProfileRepository{
		findInFn: func(_ context.Context, profileIDs []string) ([]models.Profile, error) {
			assert.Equal(t, ids, profileIDs)
			return nil, store.ErrProfileNotFound
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.GetIn(context.Background(), ids)

	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestProfileService_GetOwn_Delegates(t *testing.T) {
	repoErr := errors.New("connection lost")
	repo := &mockProfileRepository{
		findAllByUserFn: func(_ context.Context, userID int64) ([]models.Profile, error) {
			assert.Equal(t, owner.UserID, userID)
			return nil, repoErr
		},
	}
	svc := newTestProfileSvc(t, repo)

	_, err := svc.GetOwn(context.Background(), owner.UserID)

	assert.ErrorIs(t, err, repoErr)
}
