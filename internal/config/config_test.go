package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Anthonyushie/underworld-clash/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "underworld_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"regen_interval_seconds": 30,
		"seed_demo_data": true,
		"item_list": [
			{"name": "Tommy Gun", "description": "Rapid fire", "category": "weapon",
			 "effect": {"attack_power": 15, "energy_boost": 2}, "price": 5000, "rarity": "rare"}
		]
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected address :9090, got %s", cfg.ServerAddress)
	}
	if cfg.RegenInterval != 30*time.Second {
		t.Fatalf("expected 30s regen interval, got %s", cfg.RegenInterval)
	}
	if !cfg.SeedDemoData {
		t.Fatalf("expected seed_demo_data to be set")
	}
	if len(cfg.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(cfg.Items))
	}
	item := cfg.Items[0]
	if item.Effect.Get(game.EffectAttackPower) != 15 {
		t.Fatalf("expected attack_power 15, got %v", item.Effect.Get(game.EffectAttackPower))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `{
		"item_list": [
			{"name": "Lucky Coin", "category": "utility",
			 "effect": {"steal_chance": 5}, "price": 8000, "rarity": "legendary"}
		]
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %s", cfg.ServerAddress)
	}
	if cfg.RegenInterval != 60*time.Second {
		t.Fatalf("expected default 60s regen interval, got %s", cfg.RegenInterval)
	}
}

func TestLoadConfig_EmptyItemList(t *testing.T) {
	path := writeConfig(t, `{"item_list": []}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for empty item_list")
	}
}

func TestLoadConfig_DuplicateItemName(t *testing.T) {
	path := writeConfig(t, `{
		"item_list": [
			{"name": "Tommy Gun", "category": "weapon", "rarity": "rare"},
			{"name": "tommy gun", "category": "weapon", "rarity": "rare"}
		]
	}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for duplicate item name")
	}
}

func TestLoadConfig_UnknownEffectKind(t *testing.T) {
	path := writeConfig(t, `{
		"item_list": [
			{"name": "Cursed Die", "category": "utility", "rarity": "common",
			 "effect": {"summon_dragons": 1}}
		]
	}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown effect kind")
	}
}

func TestLoadConfig_UnknownCategory(t *testing.T) {
	path := writeConfig(t, `{
		"item_list": [
			{"name": "Mystery Box", "category": "loot", "rarity": "common"}
		]
	}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
