package game

// EffectKind identifies one stat an item can influence. Using constants
// avoids typos and keeps references consistent across packages.
type EffectKind string

const (
	EffectAttackPower  EffectKind = "attack_power"
	EffectDefenseBoost EffectKind = "defense_boost"
	EffectEnergyBoost  EffectKind = "energy_boost"
	EffectHealthBoost  EffectKind = "health_boost"
	EffectXPMultiplier EffectKind = "xp_multiplier"
	EffectStealChance  EffectKind = "steal_chance"
	EffectMaxEnergy    EffectKind = "max_energy"
	EffectMaxHealth    EffectKind = "max_health"
)

// KnownEffectKinds lists every effect kind an item may carry. Config
// validation rejects anything outside this set.
var KnownEffectKinds = []EffectKind{
	EffectAttackPower,
	EffectDefenseBoost,
	EffectEnergyBoost,
	EffectHealthBoost,
	EffectXPMultiplier,
	EffectStealChance,
	EffectMaxEnergy,
	EffectMaxHealth,
}

// EffectVector is a sparse mapping from effect kind to magnitude. Items
// only carry the kinds they influence; an absent kind means zero.
type EffectVector map[EffectKind]float64

// Get returns the magnitude for kind, or 0 when the item does not carry it.
func (v EffectVector) Get(kind EffectKind) float64 {
	if v == nil {
		return 0
	}
	return v[kind]
}
