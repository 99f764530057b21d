package engine

import (
	"github.com/Anthonyushie/underworld-clash/internal/game"
)

// BasePowerPerLevel converts a plain level into base combat power.
const BasePowerPerLevel = 5

// ComputePower derives combat power from a level and the effect vectors of
// the currently equipped items. Power is level*5 plus the sum of each
// item's attack_power magnitude; items without one contribute nothing.
//
// The function is deterministic and side-effect free so a battle snapshot
// replays to the same value.
func ComputePower(level int, equipped []game.EffectVector) int {
	if level < 1 {
		level = 1
	}
	power := level * BasePowerPerLevel
	for _, effect := range equipped {
		power += int(effect.Get(game.EffectAttackPower))
	}
	if power < 0 {
		power = 0
	}
	return power
}
