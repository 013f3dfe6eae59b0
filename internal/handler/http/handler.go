package http

import (
	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/service"
)

type Handler struct {
	services *service.Services

	// recaptchaRequired gates profile creation behind CAPTCHA verification.
	recaptchaRequired bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, recaptchaCfg config.Recaptcha, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		recaptchaRequired: recaptchaCfg.Required,
		logger:            logger,
	}
}
