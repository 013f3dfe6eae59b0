package handler

import (
	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/handler/http"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Recaptcha, logger),
	}, nil
}
