package http

import (
	"context"
	"time"

	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/service"
	"github.com/snetdev/profile-core/models"
)

// ─────────────────────────────────────────────
// Mock: service.ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getFn        func(ctx context.Context, profileID string) (models.Profile, error)
	getInFn      func(ctx context.Context, profileIDs []string) ([]models.Profile, error)
	getOwnFn     func(ctx context.Context, userID int64) ([]models.Profile, error)
	createFn     func(ctx context.Context, owner *models.User, draft models.ProfileDraft, now time.Time) (models.Profile, error)
	registerFn   func(ctx context.Context, owner *models.User, draft models.ProfileDraft) (models.Profile, error)
	changeDataFn func(ctx context.Context, actor *models.User, profile *models.Profile, draft models.ProfileDraft, now time.Time) error
	editFn       func(ctx context.Context, actor *models.User, profileID string, draft models.ProfileDraft) (models.Profile, error)
}

func (m *mockProfileService) Get(ctx context.Context, profileID string) (models.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, profileID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) GetIn(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	if m.getInFn != nil {
		return m.getInFn(ctx, profileIDs)
	}
	return nil, nil
}

func (m *mockProfileService) GetOwn(ctx context.Context, userID int64) ([]models.Profile, error) {
	if m.getOwnFn != nil {
		return m.getOwnFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileService) Create(ctx context.Context, owner *models.User, draft models.ProfileDraft, now time.Time) (models.Profile, error) {
	if m.createFn != nil {
		return m.createFn(ctx, owner, draft, now)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) Register(ctx context.Context, owner *models.User, draft models.ProfileDraft) (models.Profile, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, owner, draft)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) ChangeData(ctx context.Context, actor *models.User, profile *models.Profile, draft models.ProfileDraft, now time.Time) error {
	if m.changeDataFn != nil {
		return m.changeDataFn(ctx, actor, profile, draft, now)
	}
	return nil
}

func (m *mockProfileService) Edit(ctx context.Context, actor *models.User, profileID string, draft models.ProfileDraft) (models.Profile, error) {
	if m.editFn != nil {
		return m.editFn(ctx, actor, profileID, draft)
	}
	return models.Profile{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	resolveTokenFn     func(ctx context.Context, credential *models.TokenCredential, requirement service.TokenRequirement) (*models.Token, error)
	resolveUserFn      func(ctx context.Context, credential *models.UserCredential, required bool) (*models.User, error)
	resolveRecaptchaFn func(ctx context.Context, response *string, required bool) error
	createSessionFn    func(ctx context.Context, user models.User) (models.Session, error)
	parseSessionFn     func(ctx context.Context, tokenString string) (models.Session, error)
}

func (m *mockAuthService) ResolveToken(ctx context.Context, credential *models.TokenCredential, requirement service.TokenRequirement) (*models.Token, error) {
	if m.resolveTokenFn != nil {
		return m.resolveTokenFn(ctx, credential, requirement)
	}
	if credential == nil {
		if requirement == service.TokenOptional {
			return nil, nil
		}
		return nil, service.ErrAuthenticationRequired
	}
	return &models.Token{TokenID: credential.TokenID, UserID: 7}, nil
}

func (m *mockAuthService) ResolveUser(ctx context.Context, credential *models.UserCredential, required bool) (*models.User, error) {
	if m.resolveUserFn != nil {
		return m.resolveUserFn(ctx, credential, required)
	}
	return nil, nil
}

func (m *mockAuthService) ResolveRecaptcha(ctx context.Context, response *string, required bool) error {
	if m.resolveRecaptchaFn != nil {
		return m.resolveRecaptchaFn(ctx, response, required)
	}
	return nil
}

func (m *mockAuthService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, user)
	}
	return models.Session{}, nil
}

func (m *mockAuthService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	if m.parseSessionFn != nil {
		return m.parseSessionFn(ctx, tokenString)
	}
	return models.Session{}, service.ErrSessionIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler wires the mocks into a ready-to-serve Handler.
func newTestHandler(profiles *mockProfileService, auth *mockAuthService, recaptchaRequired bool) *Handler {
	return NewHandler(&service.Services{
		ProfileService: profiles,
		AuthService:    auth,
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	}, config.Recaptcha{Required: recaptchaRequired}, logger.Nop())
}
