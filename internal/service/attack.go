package service

import (
	"errors"

	"github.com/Anthonyushie/underworld-clash/internal/engine"
	"github.com/Anthonyushie/underworld-clash/internal/game"
	"github.com/Anthonyushie/underworld-clash/internal/ledger"

	"golang.org/x/sync/errgroup"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInsufficientEnergy = errors.New("not enough energy to attack")
	ErrSelfAttack         = errors.New("cannot attack yourself")
)

// EncounterRepo is the slice of the repository the orchestrator needs
// beyond the ledger: equipped-item lookup and battle persistence.
type EncounterRepo interface {
	GetEquippedItems(userID string) ([]game.GameItem, error)
	CreateBattle(b *game.Battle) error
}

// ResolveEncounter processes one attack end to end: validate both parties
// and the attacker's energy, evaluate powers, resolve the outcome with the
// supplied draw, apply one atomic update per participant and record the
// battle. The draw is injected by the caller so the whole pipeline is
// replayable in tests.
//
// Repeating the same request is intentionally not idempotent: every call
// consumes energy and appends a new battle row.
func ResolveEncounter(led *ledger.Ledger, repo EncounterRepo, attackerID, defenderID string, draw float64) (*game.Battle, error) {
	if attackerID == defenderID {
		return nil, ErrSelfAttack
	}

	attacker, err := led.Get(attackerID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	defender, err := led.Get(defenderID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if attacker.Energy < engine.AttackEnergyCost {
		return nil, ErrInsufficientEnergy
	}

	equipped, err := repo.GetEquippedItems(attackerID)
	if err != nil {
		return nil, err
	}
	effects := make([]game.EffectVector, 0, len(equipped))
	for i := range equipped {
		effects = append(effects, equipped[i].Effect)
	}
	attackerPower := engine.ComputePower(attacker.Level, effects)
	// The defender fights on level alone; equipped items only count for
	// the side that initiated the encounter.
	defenderPower := engine.ComputePower(defender.Level, nil)

	outcome := engine.Resolve(attackerPower, defenderPower, draw)

	// Deltas are computed from the validated snapshots, never from
	// client-supplied values. The two per-player updates are each atomic
	// but deliberately not wrapped in a joint transaction.
	attackerWon := outcome.Winner == engine.WinnerAttacker
	defenderLevel := defender.Level

	var g errgroup.Group
	g.Go(func() error {
		_, err := led.Update(attackerID, func(p *game.Profile) {
			p.Energy -= engine.AttackEnergyCost
			if attackerWon {
				p.XP += defenderLevel * engine.XPPerDefenderLevel
				p.Currency += outcome.CurrencyReward
			} else {
				p.Health -= engine.LosingAttackerDamage
			}
		})
		return err
	})
	g.Go(func() error {
		_, err := led.Update(defenderID, func(p *game.Profile) {
			if attackerWon {
				p.Health -= engine.LosingDefenderDamage
			}
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	winnerID := attackerID
	if !attackerWon {
		winnerID = defenderID
	}
	battle := &game.Battle{
		AttackerID:       attackerID,
		DefenderID:       defenderID,
		WinnerID:         winnerID,
		AttackerSnapshot: game.PowerSnapshot{Level: attacker.Level, Power: attackerPower},
		DefenderSnapshot: game.PowerSnapshot{Level: defenderLevel, Power: defenderPower},
		RewardCurrency:   outcome.CurrencyReward,
	}
	if err := repo.CreateBattle(battle); err != nil {
		return nil, err
	}
	return battle, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, ledger.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}
