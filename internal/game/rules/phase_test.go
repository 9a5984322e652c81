package rules

import (
	"errors"
	"testing"
)

func TestRoundManagerStartsInSetup(t *testing.T) {
	rm := NewRoundManager(3)

	if rm.Phase() != PhaseSetup {
		t.Fatalf("expected SETUP, got %s", rm.Phase())
	}
	if rm.Round() != 1 {
		t.Fatalf("expected round 1, got %d", rm.Round())
	}
	if rm.CurrentPlayer() != 0 {
		t.Fatalf("expected player 0, got %d", rm.CurrentPlayer())
	}
}

func TestRoundManagerTransitions(t *testing.T) {
	rm := NewRoundManager(2)

	if err := rm.Transition(PhaseSelling); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("setup -> selling should be rejected, got %v", err)
	}
	if err := rm.Transition(PhaseProduction); err != nil {
		t.Fatalf("setup -> production: %v", err)
	}
	rm.AdvancePlayer()
	if err := rm.Transition(PhaseSelling); err != nil {
		t.Fatalf("production -> selling: %v", err)
	}
	if rm.CurrentPlayer() != 0 {
		t.Fatal("selling should start with player 0")
	}
	if err := rm.Transition(PhaseGameOver); err != nil {
		t.Fatalf("selling -> game over: %v", err)
	}
	for _, to := range []Phase{PhaseSetup, PhaseProduction, PhaseSelling} {
		if err := rm.Transition(to); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("game over is terminal, %s accepted", to)
		}
	}
}

func TestRoundManagerAdvancePlayerWraps(t *testing.T) {
	rm := NewRoundManager(3)

	if rm.AdvancePlayer() || rm.AdvancePlayer() {
		t.Fatal("should not wrap before the last seat")
	}
	if !rm.IsCurrent(2) {
		t.Fatalf("expected player 2, got %d", rm.CurrentPlayer())
	}
	if !rm.AdvancePlayer() {
		t.Fatal("expected wrap after the last seat")
	}
	if rm.CurrentPlayer() != 0 {
		t.Fatalf("expected player 0 after wrap, got %d", rm.CurrentPlayer())
	}
	if rm.NextRound() != 2 {
		t.Fatal("expected round 2")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseGameOver.String() != "GAME_OVER" {
		t.Fatalf("unexpected name %s", PhaseGameOver)
	}
	if Phase(42).String() != "PHASE_42" {
		t.Fatalf("unexpected name %s", Phase(42))
	}
}
