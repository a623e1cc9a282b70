package main

import (
	"errors"
	"log"
	"os"

	"personal-diary/internal/apperr"
	"personal-diary/internal/cli"
	"personal-diary/internal/config"
	"personal-diary/internal/debug"
	"personal-diary/internal/logger"
	"personal-diary/internal/services"
	"personal-diary/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)
	dc := debug.NewCoordinator(debug.Config{
		EnableTimingTracking: cfg.Debug.Timing,
		EnableFileTracking:   cfg.Debug.Files,
	}, appLogger)
	defer dc.Shutdown()

	journal := services.NewJournal(storage.NewFileStore(cfg.DiaryFile, dc), dc)
	auth := services.NewAuthGate(cfg.Password, appLogger)

	if err := cli.NewApp(journal, auth, os.Stdin, os.Stdout, appLogger).Run(); err != nil {
		if errors.Is(err, apperr.ErrWrongPassword) {
			dc.Shutdown()
			os.Exit(1)
		}
		log.Fatalf("diary-cli: %v", err)
	}
}
