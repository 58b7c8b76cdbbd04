package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/SM-TRIBE/Crismon/internal/bot"
	"github.com/SM-TRIBE/Crismon/internal/config"
	"github.com/SM-TRIBE/Crismon/internal/i18n"
	"github.com/SM-TRIBE/Crismon/internal/logging"
	"github.com/SM-TRIBE/Crismon/internal/store"
	"github.com/SM-TRIBE/Crismon/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info", "console")
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := world.Validate(); err != nil {
		log.Fatal().Err(err).Msg("world data is broken")
	}

	tr, err := i18n.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load locales")
	}

	st := store.Open(cfg.DBFile, log)

	b, err := bot.New(cfg, st, tr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	log.Info().
		Int64("admin_id", cfg.AdminID).
		Str("db_file", cfg.DBFile).
		Int("players", st.Len()).
		Msg("crimson city is open")

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		<-c
		log.Info().Msg("shutting down")
		os.Exit(0)
	}()

	if err := b.Start(); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}
