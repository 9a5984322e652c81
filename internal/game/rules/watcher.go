package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// WatcherScope defines how long a watcher's tracking lasts.
type WatcherScope int

const (
	// WatcherScopeGame tracks events for the entire game.
	WatcherScopeGame WatcherScope = iota
	// WatcherScopeRound is reset whenever a production phase starts.
	WatcherScopeRound
)

func (ws WatcherScope) String() string {
	switch ws {
	case WatcherScopeGame:
		return "GAME"
	case WatcherScopeRound:
		return "ROUND"
	default:
		return "UNKNOWN"
	}
}

// Watcher observes game events and tracks a condition or tally.
type Watcher interface {
	Watch(event Event)
	Reset()
	ConditionMet() bool
	GetScope() WatcherScope
	// GetKey returns the registry key; empty means the registry assigns one.
	GetKey() string
	Copy() Watcher
}

// BaseWatcher provides the bookkeeping shared by concrete watchers.
type BaseWatcher struct {
	scope     WatcherScope
	condition bool
	key       string
}

// NewBaseWatcher creates a new base watcher with the specified scope.
func NewBaseWatcher(scope WatcherScope) *BaseWatcher {
	return &BaseWatcher{scope: scope}
}

func (bw *BaseWatcher) GetScope() WatcherScope {
	return bw.scope
}

func (bw *BaseWatcher) ConditionMet() bool {
	return bw.condition
}

func (bw *BaseWatcher) SetCondition(condition bool) {
	bw.condition = condition
}

func (bw *BaseWatcher) Reset() {
	bw.condition = false
}

func (bw *BaseWatcher) GetKey() string {
	return bw.key
}

func (bw *BaseWatcher) SetKey(key string) {
	bw.key = key
}

// WatcherRegistry manages watchers for a game.
type WatcherRegistry struct {
	mu       sync.RWMutex
	watchers map[string]Watcher
	byScope  map[WatcherScope][]Watcher
}

// NewWatcherRegistry creates a new watcher registry.
func NewWatcherRegistry() *WatcherRegistry {
	return &WatcherRegistry{
		watchers: make(map[string]Watcher),
		byScope:  make(map[WatcherScope][]Watcher),
	}
}

// AddWatcher adds a watcher, replacing any watcher with the same key.
func (wr *WatcherRegistry) AddWatcher(watcher Watcher) {
	if watcher == nil {
		return
	}

	wr.mu.Lock()
	defer wr.mu.Unlock()

	key := watcher.GetKey()
	if key == "" {
		key = generateKey(watcher)
		if setter, ok := watcher.(interface{ SetKey(string) }); ok {
			setter.SetKey(key)
		}
	}
	if _, exists := wr.watchers[key]; exists {
		wr.removeLocked(key)
	}

	wr.watchers[key] = watcher
	scope := watcher.GetScope()
	wr.byScope[scope] = append(wr.byScope[scope], watcher)
}

// RemoveWatcher removes a watcher from the registry.
func (wr *WatcherRegistry) RemoveWatcher(key string) {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	wr.removeLocked(key)
}

func (wr *WatcherRegistry) removeLocked(key string) {
	watcher, ok := wr.watchers[key]
	if !ok {
		return
	}
	delete(wr.watchers, key)

	scope := watcher.GetScope()
	watchers := wr.byScope[scope]
	for i, w := range watchers {
		if w == watcher {
			wr.byScope[scope] = append(watchers[:i:i], watchers[i+1:]...)
			break
		}
	}
}

// GetWatcher retrieves a watcher by key.
func (wr *WatcherRegistry) GetWatcher(key string) Watcher {
	wr.mu.RLock()
	defer wr.mu.RUnlock()
	return wr.watchers[key]
}

// GetWatchersByScope returns all watchers for a given scope.
func (wr *WatcherRegistry) GetWatchersByScope(scope WatcherScope) []Watcher {
	wr.mu.RLock()
	defer wr.mu.RUnlock()
	watchers := wr.byScope[scope]
	result := make([]Watcher, len(watchers))
	copy(result, watchers)
	return result
}

// ResetWatchers resets every watcher.
func (wr *WatcherRegistry) ResetWatchers() {
	wr.mu.RLock()
	defer wr.mu.RUnlock()
	for _, watcher := range wr.watchers {
		watcher.Reset()
	}
}

// ResetWatchersByScope resets all watchers for a given scope.
func (wr *WatcherRegistry) ResetWatchersByScope(scope WatcherScope) {
	wr.mu.RLock()
	defer wr.mu.RUnlock()
	for _, watcher := range wr.byScope[scope] {
		watcher.Reset()
	}
}

// NotifyWatchers delivers an event to every watcher in key order.
func (wr *WatcherRegistry) NotifyWatchers(event Event) {
	wr.mu.RLock()
	defer wr.mu.RUnlock()

	keys := make([]string, 0, len(wr.watchers))
	for key := range wr.watchers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		wr.watchers[key].Watch(event)
	}
}

// generateKey derives a key from the concrete type, e.g. "SalesWatcher".
func generateKey(watcher Watcher) string {
	name := fmt.Sprintf("%T", watcher)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}
