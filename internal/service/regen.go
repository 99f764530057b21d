package service

import (
	"time"

	"github.com/Anthonyushie/underworld-clash/internal/game"
	"github.com/Anthonyushie/underworld-clash/internal/ledger"
	"github.com/Anthonyushie/underworld-clash/internal/logging"
)

// Per-tick regeneration amounts; the ledger clamps both at the caps.
const (
	RegenHealthPerTick = 5
	RegenEnergyPerTick = 1
)

// RegenRepo is the slice of the repository the regeneration sweep needs.
type RegenRepo interface {
	GetAllProfiles() ([]game.Profile, error)
}

// RegenerateAll applies one regeneration tick to every profile through the
// ledger, and releases any restraint whose deadline has passed. Failures
// on individual profiles are logged and skipped so one bad row cannot
// stall everyone else's regeneration.
func RegenerateAll(repo RegenRepo, led *ledger.Ledger, now time.Time) error {
	profiles, err := repo.GetAllProfiles()
	if err != nil {
		return err
	}
	for i := range profiles {
		userID := profiles[i].UserID
		_, err := led.Update(userID, func(p *game.Profile) {
			p.Health += RegenHealthPerTick
			p.Energy += RegenEnergyPerTick
			if p.IsRestrained && p.RestrainedUntil != nil && !now.Before(*p.RestrainedUntil) {
				p.IsRestrained = false
				p.RestrainedUntil = nil
			}
		})
		if err != nil {
			logging.Error("regeneration tick failed for profile", err, logging.Fields{"user_id": userID})
		}
	}
	return nil
}
