package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tiwaryash/httpd"
)

func main() {
	cfg := httpd.DefaultConfig()
	cfg.ApplyEnv()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	srv := httpd.NewServer(cfg, logger)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		received := <-sig
		logger.Info().Str("signal", received.String()).Msg("shutting down")
		srv.Shutdown()
	}()

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("directory", cfg.Directory).
		Int("workers", cfg.Workers).
		Msg("starting server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, httpd.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
	logger.Info().Msg("server stopped")
}
