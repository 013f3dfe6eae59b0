package service

import (
	"github.com/snetdev/profile-core/internal/adapter"
	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/store"
	"github.com/snetdev/profile-core/internal/validators"
)

type Services struct {
	ProfileService ProfileService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, validator validators.Validator, recaptchaVerifier adapter.RecaptchaVerifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ProfileService: NewProfileService(repositories.ProfileRepository, validator, NewMarkdownRenderer(), logger),
		AuthService:    NewAuthService(repositories.UserRepository, repositories.TokenRepository, recaptchaVerifier, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
