package main

import (
	"github.com/Anthonyushie/underworld-clash/internal/config"
	"github.com/Anthonyushie/underworld-clash/internal/logging"
	"github.com/Anthonyushie/underworld-clash/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid underworld configuration", err, logging.Fields{"config_path": path, "hint": "create an underworld_config.json with an 'item_list' array of item objects (name,description,category,effect,price,rarity) and optional keys: server.address, regen_interval_seconds, seed_demo_data"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, cfg.Items, cfg.SeedDemoData)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
