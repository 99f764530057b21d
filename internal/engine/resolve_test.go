package engine

import "testing"

func TestResolve_StrongerAttackerWins(t *testing.T) {
	out := Resolve(100, 50, 0.3)
	if out.Winner != WinnerAttacker {
		t.Fatalf("expected attacker to win on power, got %s", out.Winner)
	}
	if out.CurrencyReward != VictoryReward {
		t.Fatalf("expected reward %d, got %d", VictoryReward, out.CurrencyReward)
	}
}

func TestResolve_HighDrawOverridesPower(t *testing.T) {
	out := Resolve(50, 100, 0.6)
	if out.Winner != WinnerAttacker {
		t.Fatalf("expected attacker to win on draw alone, got %s", out.Winner)
	}
	if out.CurrencyReward != VictoryReward {
		t.Fatalf("expected reward %d, got %d", VictoryReward, out.CurrencyReward)
	}
}

func TestResolve_WeakerAttackerLosesOnLowDraw(t *testing.T) {
	out := Resolve(50, 100, 0.2)
	if out.Winner != WinnerDefender {
		t.Fatalf("expected defender to win, got %s", out.Winner)
	}
	if out.CurrencyReward != 0 {
		t.Fatalf("expected no reward on defeat, got %d", out.CurrencyReward)
	}
}

func TestResolve_EqualPowerDecidedByDraw(t *testing.T) {
	if out := Resolve(50, 50, 0.2); out.Winner != WinnerDefender {
		t.Fatalf("equal power with low draw should favor defender, got %s", out.Winner)
	}
	if out := Resolve(50, 50, 0.7); out.Winner != WinnerAttacker {
		t.Fatalf("equal power with high draw should favor attacker, got %s", out.Winner)
	}
}
