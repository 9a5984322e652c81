package rules

import (
	"testing"
)

// saleFlagWatcher raises its condition on the first sale.
type saleFlagWatcher struct {
	*BaseWatcher
}

func (w *saleFlagWatcher) Watch(event Event) {
	if event.Type == EventCardSold {
		w.SetCondition(true)
	}
}

func (w *saleFlagWatcher) Copy() Watcher {
	c := &saleFlagWatcher{BaseWatcher: NewBaseWatcher(w.GetScope())}
	c.SetCondition(w.ConditionMet())
	return c
}

func TestWatcherRegistry(t *testing.T) {
	registry := NewWatcherRegistry()

	roundWatcher := &saleFlagWatcher{BaseWatcher: NewBaseWatcher(WatcherScopeRound)}
	registry.AddWatcher(roundWatcher)

	if roundWatcher.GetKey() != "saleFlagWatcher" {
		t.Fatalf("expected generated key, got %q", roundWatcher.GetKey())
	}
	if registry.GetWatcher("saleFlagWatcher") == nil {
		t.Fatal("should retrieve watcher by generated key")
	}

	gameWatcher := &saleFlagWatcher{BaseWatcher: NewBaseWatcher(WatcherScopeGame)}
	gameWatcher.SetKey("game-sales")
	registry.AddWatcher(gameWatcher)

	if n := len(registry.GetWatchersByScope(WatcherScopeRound)); n != 1 {
		t.Fatalf("expected 1 round watcher, got %d", n)
	}

	registry.NotifyWatchers(NewEvent(EventCardSold, 0))
	if !roundWatcher.ConditionMet() || !gameWatcher.ConditionMet() {
		t.Fatal("both watchers should see the sale")
	}

	registry.ResetWatchersByScope(WatcherScopeRound)
	if roundWatcher.ConditionMet() {
		t.Fatal("round watcher should reset")
	}
	if !gameWatcher.ConditionMet() {
		t.Fatal("game watcher should survive a round reset")
	}

	registry.RemoveWatcher("game-sales")
	if registry.GetWatcher("game-sales") != nil {
		t.Fatal("watcher should be removed")
	}
	if n := len(registry.GetWatchersByScope(WatcherScopeGame)); n != 0 {
		t.Fatalf("expected no game watchers, got %d", n)
	}
}

func TestWatcherRegistryReplacesDuplicateKey(t *testing.T) {
	registry := NewWatcherRegistry()

	a := &saleFlagWatcher{BaseWatcher: NewBaseWatcher(WatcherScopeRound)}
	a.SetKey("dup")
	b := &saleFlagWatcher{BaseWatcher: NewBaseWatcher(WatcherScopeRound)}
	b.SetKey("dup")

	registry.AddWatcher(a)
	registry.AddWatcher(b)

	if registry.GetWatcher("dup") != b {
		t.Fatal("later watcher should win")
	}
	if n := len(registry.GetWatchersByScope(WatcherScopeRound)); n != 1 {
		t.Fatalf("expected 1 round watcher, got %d", n)
	}
}
