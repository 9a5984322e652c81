package rules

import (
	"errors"
	"fmt"
)

// Phase is the game-wide stage of a round.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseProduction
	PhaseSelling
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseSetup:      "SETUP",
	PhaseProduction: "PRODUCTION",
	PhaseSelling:    "SELLING",
	PhaseGameOver:   "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// ErrInvalidTransition is returned for a phase change the table does not allow.
var ErrInvalidTransition = errors.New("invalid phase transition")

var allowedTransitions = map[Phase][]Phase{
	PhaseSetup:      {PhaseProduction},
	PhaseProduction: {PhaseSelling},
	PhaseSelling:    {PhaseProduction, PhaseGameOver},
}

// CanTransition reports whether from -> to is a legal phase change.
func CanTransition(from, to Phase) bool {
	for _, p := range allowedTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// RoundManager tracks phase, round number and whose turn it is.
type RoundManager struct {
	phase       Phase
	round       int
	current     int
	playerCount int
}

// NewRoundManager starts in setup at round 1 with player 0 to act.
func NewRoundManager(playerCount int) *RoundManager {
	return &RoundManager{
		phase:       PhaseSetup,
		round:       1,
		playerCount: playerCount,
	}
}

// Phase returns the phase in progress.
func (rm *RoundManager) Phase() Phase {
	return rm.phase
}

// Round returns the 1-based round number.
func (rm *RoundManager) Round() int {
	return rm.round
}

// CurrentPlayer returns the index of the acting player.
func (rm *RoundManager) CurrentPlayer() int {
	return rm.current
}

// PlayerCount returns the number of seats.
func (rm *RoundManager) PlayerCount() int {
	return rm.playerCount
}

// Transition moves to the next phase and hands the turn to player 0.
func (rm *RoundManager) Transition(to Phase) error {
	if !CanTransition(rm.phase, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rm.phase, to)
	}
	rm.phase = to
	rm.current = 0
	return nil
}

// NextRound increments the round counter.
func (rm *RoundManager) NextRound() int {
	rm.round++
	return rm.round
}

// AdvancePlayer passes the turn. It reports true when play wrapped past the
// last seat, leaving the index on player 0.
func (rm *RoundManager) AdvancePlayer() bool {
	rm.current++
	if rm.current >= rm.playerCount {
		rm.current = 0
		return true
	}
	return false
}

// IsCurrent reports whether player holds the turn.
func (rm *RoundManager) IsCurrent(player int) bool {
	return rm.current == player
}

// Restore sets every field directly. Used when rebuilding a snapshot.
func (rm *RoundManager) Restore(phase Phase, round, current int) {
	rm.phase = phase
	rm.round = round
	rm.current = current
}
