package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wisensor/wisensor-api/internal/api"
	"github.com/wisensor/wisensor-api/internal/infrastructure/config"
	"github.com/wisensor/wisensor-api/internal/infrastructure/db/postgres"
	"github.com/wisensor/wisensor-api/pkg/logger"
)

// @title           Wisensor API
// @version         1.0
// @description     User, role, permission and project management backend.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// A missing .env file is fine, environment variables take over.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Debug})
	log := logger.Get()

	db, err := postgres.Connect(cfg.DB.DSN(), cfg.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}

	if err := postgres.Seed(context.Background(), db, log); err != nil {
		log.Fatal().Err(err).Msg("seeding database")
	}

	e := api.NewRouter(db, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
