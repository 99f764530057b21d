package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Anthonyushie/underworld-clash/internal/game"
)

type itemEntry struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Effect      map[string]float64 `json:"effect"`
	Price       int                `json:"price"`
	Rarity      string             `json:"rarity"`
}

type rawConfig struct {
	ItemList []itemEntry `json:"item_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Interval between regeneration ticks, in seconds. Defaults to 60.
	RegenIntervalSeconds int `json:"regen_interval_seconds"`
	// When true, a handful of demo profiles are seeded on first run.
	SeedDemoData bool `json:"seed_demo_data"`
}

// LoadedConfig contains the item catalog to seed and server settings.
type LoadedConfig struct {
	Items         []game.GameItem
	ServerAddress string
	RegenInterval time.Duration
	SeedDemoData  bool
}

var validCategories = map[string]struct{}{
	game.CategoryWeapon:     {},
	game.CategoryArmor:      {},
	game.CategoryUtility:    {},
	game.CategoryConsumable: {},
	game.CategorySpecial:    {},
}

var validRarities = map[string]struct{}{
	game.RarityCommon:    {},
	game.RarityRare:      {},
	game.RarityEpic:      {},
	game.RarityLegendary: {},
}

// LoadConfig reads the configuration file at path and returns the item
// catalog and server settings. It requires the key `item_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.ItemList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: item_list is empty (provide an 'item_list' array)", path)
	}

	known := make(map[game.EffectKind]struct{}, len(game.KnownEffectKinds))
	for _, k := range game.KnownEffectKinds {
		known[k] = struct{}{}
	}

	out := make([]game.GameItem, 0, len(entries))
	nameSet := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: item entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate item name '%s'", path, e.Name)
		}
		nameSet[ln] = struct{}{}
		if _, ok := validCategories[e.Category]; !ok {
			return nil, fmt.Errorf("config file %s: item '%s' has unknown category '%s'", path, e.Name, e.Category)
		}
		if _, ok := validRarities[e.Rarity]; !ok {
			return nil, fmt.Errorf("config file %s: item '%s' has unknown rarity '%s'", path, e.Name, e.Rarity)
		}
		effect := make(game.EffectVector, len(e.Effect))
		for k, v := range e.Effect {
			kind := game.EffectKind(k)
			if _, ok := known[kind]; !ok {
				return nil, fmt.Errorf("config file %s: item '%s' has unknown effect kind '%s'", path, e.Name, k)
			}
			effect[kind] = v
		}
		out = append(out, game.GameItem{
			Name:        e.Name,
			Description: e.Description,
			Category:    e.Category,
			Effect:      effect,
			Price:       e.Price,
			Rarity:      e.Rarity,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	regen := 60 * time.Second
	if rc.RegenIntervalSeconds > 0 {
		regen = time.Duration(rc.RegenIntervalSeconds) * time.Second
	}

	return &LoadedConfig{
		Items:         out,
		ServerAddress: addr,
		RegenInterval: regen,
		SeedDemoData:  rc.SeedDemoData,
	}, nil
}
