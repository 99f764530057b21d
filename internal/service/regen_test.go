package service

import (
	"testing"
	"time"

	"github.com/Anthonyushie/underworld-clash/internal/ledger"
)

func TestRegenerateAll_IncrementsTowardCaps(t *testing.T) {
	a := attacker()
	a.Health = 90
	a.Energy = 5
	d := defender()
	d.Health = 70 // max 95
	d.Energy = 8  // max 8, already full
	repo := newMockRepo(a, d)
	led := ledger.New(repo)

	if err := RegenerateAll(repo, led, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.GetProfileByUserID("attacker")
	if got.Health != 95 || got.Energy != 6 {
		t.Fatalf("expected 95/6 after tick, got %d/%d", got.Health, got.Energy)
	}
	got, _ = repo.GetProfileByUserID("defender")
	if got.Health != 75 || got.Energy != 8 {
		t.Fatalf("expected 75/8 after tick (energy capped), got %d/%d", got.Health, got.Energy)
	}
}

func TestRegenerateAll_ClampsAtMax(t *testing.T) {
	a := attacker()
	a.Health = 98 // max 100
	repo := newMockRepo(a)
	led := ledger.New(repo)

	if err := RegenerateAll(repo, led, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.GetProfileByUserID("attacker")
	if got.Health != 100 {
		t.Fatalf("expected health capped at 100, got %d", got.Health)
	}
}

func TestRegenerateAll_ReleasesExpiredRestraint(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	a := attacker()
	a.IsRestrained = true
	a.RestrainedUntil = &past
	d := defender()
	d.IsRestrained = true
	d.RestrainedUntil = &future
	repo := newMockRepo(a, d)
	led := ledger.New(repo)

	if err := RegenerateAll(repo, led, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.GetProfileByUserID("attacker")
	if got.IsRestrained || got.RestrainedUntil != nil {
		t.Fatalf("expected expired restraint released, got %+v", got)
	}
	got, _ = repo.GetProfileByUserID("defender")
	if !got.IsRestrained {
		t.Fatalf("expected future restraint kept")
	}
}
