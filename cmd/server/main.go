package main

import (
	"context"
	"fmt"

	"github.com/snetdev/profile-core/internal/adapter"
	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/handler"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/server"
	"github.com/snetdev/profile-core/internal/service"
	"github.com/snetdev/profile-core/internal/store"
	"github.com/snetdev/profile-core/internal/validators"
	"github.com/snetdev/profile-core/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("profile-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	profileValidator, err := validators.NewProfileValidator(cfg.Profile)
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling profile format rules")
	}

	recaptchaVerifier := adapter.NewRecaptchaVerifier(cfg.Recaptcha, log)

	services, err := service.NewServices(repositories, profileValidator, recaptchaVerifier, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", orNA(buildInfo.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(buildInfo.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(buildInfo.BuildCommit()))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
