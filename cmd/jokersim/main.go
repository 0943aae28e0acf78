// Command jokersim serves the joker registry and batch simulator over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jokersim/joker-engine-go/internal/api"
	"github.com/jokersim/joker-engine-go/internal/config"
	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open store")
	}
	defer st.Close()
	if err := st.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("migrate store")
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewServer(st, logger).Routes(),
	}

	go func() {
		logger.Info().
			Str("addr", cfg.HTTPAddr).
			Int("jokers", joker.Default().Len()).
			Msg("jokersim listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("jokersim stopped")
}
