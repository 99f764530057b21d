package main

import (
	"os"

	"github.com/Anthonyushie/underworld-clash/internal/api"
	"github.com/Anthonyushie/underworld-clash/internal/constants"
	"github.com/Anthonyushie/underworld-clash/internal/ledger"
	"github.com/Anthonyushie/underworld-clash/internal/logging"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file may supply env vars in development; absence is fine.
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath, cfg)

	led := ledger.New(repo)
	handler := api.NewGameHandler(repo, led)

	startRegenScanner(repo, led, cfg.RegenInterval)

	router := buildRouter(handler)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
