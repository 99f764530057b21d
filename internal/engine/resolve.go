package engine

// Winner marks which side of an encounter prevailed.
type Winner string

const (
	WinnerAttacker Winner = "attacker"
	WinnerDefender Winner = "defender"
)

// Reward and delta constants. The caller applies the deltas; the resolver
// only decides the outcome.
const (
	// VictoryReward is the flat currency payout for a winning attacker.
	VictoryReward = 500
	// AttackEnergyCost is consumed by the attacker on every encounter,
	// win or lose.
	AttackEnergyCost = 1
	// XPPerDefenderLevel scales the winning attacker's experience gain by
	// the defender's level at resolution time.
	XPPerDefenderLevel = 20
	// LosingDefenderDamage is taken by the defender when the attacker wins.
	LosingDefenderDamage = 15
	// LosingAttackerDamage is taken by the attacker when the defender wins.
	LosingAttackerDamage = 20
)

// Outcome is the resolver's verdict for one encounter.
type Outcome struct {
	Winner         Winner
	CurrencyReward int
}

// Resolve decides an encounter from both power values and one random draw
// in [0,1). The attacker wins on strictly greater power, or on the draw
// alone when it exceeds 0.5 — a weaker attacker still wins about half the
// time. The draw is an explicit input, never a global RNG read, so the
// function stays pure and replayable.
func Resolve(attackerPower, defenderPower int, draw float64) Outcome {
	if attackerPower > defenderPower || draw > 0.5 {
		return Outcome{Winner: WinnerAttacker, CurrencyReward: VictoryReward}
	}
	return Outcome{Winner: WinnerDefender}
}
