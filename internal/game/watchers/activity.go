// Package watchers holds the concrete event watchers a game registers.
package watchers

import (
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
)

// Activity is one player's tally for the current round.
type Activity struct {
	Occupations   int
	Slides        int
	Sales         int
	OutsourceUses int
	Points        int
}

// RoundActivityWatcher tracks what each player did this round.
// It is round-scoped and cleared whenever production starts.
type RoundActivityWatcher struct {
	*rules.BaseWatcher
	activity map[int]*Activity
}

// NewRoundActivityWatcher creates a new round activity watcher.
func NewRoundActivityWatcher() *RoundActivityWatcher {
	w := &RoundActivityWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeRound),
		activity:    make(map[int]*Activity),
	}
	w.SetKey("RoundActivityWatcher")
	return w
}

func (w *RoundActivityWatcher) entry(player int) *Activity {
	a, ok := w.activity[player]
	if !ok {
		a = &Activity{}
		w.activity[player] = a
	}
	return a
}

// Watch implements the Watcher interface.
func (w *RoundActivityWatcher) Watch(event rules.Event) {
	if event.Player == rules.NoPlayer {
		return
	}
	switch event.Type {
	case rules.EventElementOccupied:
		w.entry(event.Player).Occupations++
	case rules.EventCubeSlid:
		w.entry(event.Player).Slides++
	case rules.EventCardSold:
		a := w.entry(event.Player)
		a.Sales++
		a.Points += event.Amount
	case rules.EventOutsourceUsed:
		w.entry(event.Player).OutsourceUses++
	default:
		return
	}
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *RoundActivityWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.activity = make(map[int]*Activity)
}

// Get returns a copy of a player's tally.
func (w *RoundActivityWatcher) Get(player int) Activity {
	if a, ok := w.activity[player]; ok {
		return *a
	}
	return Activity{}
}

// All returns tallies for players 0..n-1.
func (w *RoundActivityWatcher) All(n int) []Activity {
	out := make([]Activity, n)
	for i := range out {
		out[i] = w.Get(i)
	}
	return out
}

// Copy creates a copy of this watcher.
func (w *RoundActivityWatcher) Copy() rules.Watcher {
	c := NewRoundActivityWatcher()
	c.SetCondition(w.ConditionMet())
	for k, v := range w.activity {
		a := *v
		c.activity[k] = &a
	}
	return c
}
