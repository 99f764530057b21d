// Package ledger owns all mutation of player profiles. Every write goes
// through Update, which serializes read-modify-write cycles per player and
// clamps resource fields back into their valid ranges regardless of what
// the caller's mutator did.
package ledger

import (
	"errors"
	"sync"

	"github.com/Anthonyushie/underworld-clash/internal/game"
)

// ErrNotFound is returned when no profile exists for the requested player.
var ErrNotFound = errors.New("profile not found")

// ProfileStore is the minimal persistence surface the ledger needs. The
// gorm repository satisfies it; tests use in-memory fakes.
type ProfileStore interface {
	GetProfileByUserID(userID string) (*game.Profile, error)
	SaveProfile(p *game.Profile) error
}

// Ledger serializes profile updates per player id. Updates for different
// players proceed concurrently; two updates for the same player never
// interleave their read and write.
type Ledger struct {
	store ProfileStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(store ProfileStore) *Ledger {
	return &Ledger{store: store, locks: make(map[string]*sync.Mutex)}
}

// lockFor returns the mutex dedicated to userID, creating it on first use.
// Locks are never removed; the map grows with the set of active players.
func (l *Ledger) lockFor(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk, ok := l.locks[userID]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[userID] = lk
	}
	return lk
}

// Get returns the player's current profile or ErrNotFound.
func (l *Ledger) Get(userID string) (*game.Profile, error) {
	return l.store.GetProfileByUserID(userID)
}

// Update applies mutate to the latest stored profile under the player's
// lock, clamps the result and persists it. The returned profile is the
// post-clamp state.
func (l *Ledger) Update(userID string, mutate func(p *game.Profile)) (*game.Profile, error) {
	lk := l.lockFor(userID)
	lk.Lock()
	defer lk.Unlock()

	p, err := l.store.GetProfileByUserID(userID)
	if err != nil {
		return nil, err
	}
	mutate(p)
	clamp(p)
	if err := l.store.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// clamp forces resource fields back into their invariant ranges. It runs
// after every mutator so no caller bug can persist an out-of-range value.
func clamp(p *game.Profile) {
	if p.MaxHealth < 1 {
		p.MaxHealth = 1
	}
	if p.MaxEnergy < 1 {
		p.MaxEnergy = 1
	}
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.Energy < 0 {
		p.Energy = 0
	}
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
	if p.Currency < 0 {
		p.Currency = 0
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Level < 1 {
		p.Level = 1
	}
}
