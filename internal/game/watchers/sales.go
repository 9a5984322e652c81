package watchers

import (
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
)

// SalesWatcher records every card sale of the game, in order.
type SalesWatcher struct {
	*rules.BaseWatcher
	sales map[int][]string // player -> card ids
	total int
}

// NewSalesWatcher creates a new sales watcher.
func NewSalesWatcher() *SalesWatcher {
	w := &SalesWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
		sales:       make(map[int][]string),
	}
	w.SetKey("SalesWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *SalesWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventCardSold || event.Player == rules.NoPlayer || event.Data == "" {
		return
	}
	w.sales[event.Player] = append(w.sales[event.Player], event.Data)
	w.total++
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *SalesWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.sales = make(map[int][]string)
	w.total = 0
}

// CardsSold returns the ids a player has sold.
func (w *SalesWatcher) CardsSold(player int) []string {
	return append([]string(nil), w.sales[player]...)
}

// Count returns how many cards a player has sold.
func (w *SalesWatcher) Count(player int) int {
	return len(w.sales[player])
}

// Total returns the number of sales across all players.
func (w *SalesWatcher) Total() int {
	return w.total
}

// Copy creates a copy of this watcher.
func (w *SalesWatcher) Copy() rules.Watcher {
	c := NewSalesWatcher()
	c.SetCondition(w.ConditionMet())
	c.total = w.total
	for k, v := range w.sales {
		c.sales[k] = append([]string(nil), v...)
	}
	return c
}
