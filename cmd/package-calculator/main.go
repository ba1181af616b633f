package main

import (
	"fmt"
	"os"
	"runtime"

	"package-calculator/internal/app"
	"package-calculator/internal/config"
	"package-calculator/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(logger.ParseLevel(determineLogLevel(cfg)), cfg.Log.JSON)
	appLogger.Info("Main", "application starting", map[string]interface{}{
		"go_version":   runtime.Version(),
		"log_level":    determineLogLevel(cfg),
		"pricing_mode": cfg.Pricing.Mode,
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	appLogger.Info("Main", "application terminated", nil)
}

// determineLogLevel prefers LOG_LEVEL / DEBUG from the environment over the config file
func determineLogLevel(cfg config.Config) string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	if os.Getenv("DEBUG") == "1" {
		return "debug"
	}
	return cfg.Log.Level
}
