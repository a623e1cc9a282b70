package main

import (
	"log"

	"personal-diary/internal/app"
	"personal-diary/internal/config"
	"personal-diary/internal/logger"
	"personal-diary/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)
	appLogger.Debug("Main", "configuration loaded", map[string]interface{}{
		"config": cfg.Redacted(),
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("application", application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
