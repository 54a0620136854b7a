package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nathoo/aurorexam/config"
)

var logFile *os.File

// setupLogging configures the global logger. Logs go to cfg.LogFile when
// set, otherwise to stderr through a console writer.
func setupLogging(cfg config.Config) error {
	zerolog.SetGlobalLevel(cfg.Level())

	if cfg.LogFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
