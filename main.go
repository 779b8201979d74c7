package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordventure/word-api/internal/config"
	"github.com/wordventure/word-api/internal/daily"
	"github.com/wordventure/word-api/internal/db"
	"github.com/wordventure/word-api/internal/httpserver"
	"github.com/wordventure/word-api/internal/metrics"
	"github.com/wordventure/word-api/internal/round"
	"github.com/wordventure/word-api/internal/stats"
	"github.com/wordventure/word-api/internal/store"
	"github.com/wordventure/word-api/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No word list, no service.
	dict, err := words.Load(ctx, cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	log.Info().Int("words", dict.Len()).Str("file", cfg.WordsFile).Msg("word list loaded")

	if cfg.DevSecret() {
		log.Warn().Msg("SERVER_SECRET not set; using the development secret")
	}

	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer sqlDB.Close()
	if err := db.Migrate(ctx, sqlDB); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	rounds, err := round.NewIssuer(cfg.Secret, cfg.RoundTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up round tokens")
	}
	dailyKey, err := config.DeriveKey(cfg.Secret, "daily", 32)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to derive daily key")
	}

	srv := httpserver.New(httpserver.Options{
		Dict:           dict,
		Metrics:        metrics.New(),
		Rounds:         rounds,
		Matches:        store.NewMemoryStore(),
		Daily:          daily.NewPicker(dict, dailyKey),
		DailyStore:     daily.NewStore(sqlDB),
		Stats:          stats.NewStore(sqlDB),
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("starting word api")
	if err := srv.Run(ctx, cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
