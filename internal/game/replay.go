package game

import (
	"sync"
	"time"
)

// Snapshot is the game state after one accepted action.
type Snapshot struct {
	Index     int
	Action    *Action
	View      *View
	Checksum  string
	Timestamp time.Time
}

// Replay is the in-memory history of a game, one snapshot per accepted action.
// The first snapshot is the freshly dealt game with a nil Action.
type Replay struct {
	GameID       string
	States       []*Snapshot
	CurrentIndex int
	mu           sync.RWMutex
}

// NewReplay creates a new replay instance.
func NewReplay(gameID string) *Replay {
	return &Replay{
		GameID: gameID,
		States: make([]*Snapshot, 0),
	}
}

// RecordState appends a snapshot and numbers it.
func (r *Replay) RecordState(snapshot *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot.Index = len(r.States)
	r.States = append(r.States, snapshot)
}

// Start rewinds playback to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CurrentIndex = 0
}

// Next returns the state at the cursor and moves forward.
func (r *Replay) Next() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex < len(r.States) {
		state := r.States[r.CurrentIndex]
		r.CurrentIndex++
		return state
	}
	return nil
}

// Previous moves back one state and returns it.
func (r *Replay) Previous() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return r.States[r.CurrentIndex]
	}
	return nil
}

// Skip moves the cursor by count, clamped to the recorded range.
func (r *Replay) Skip(count int) *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.States) == 0 {
		return nil
	}
	newIndex := r.CurrentIndex + count
	if newIndex >= len(r.States) {
		newIndex = len(r.States) - 1
	}
	if newIndex < 0 {
		newIndex = 0
	}
	r.CurrentIndex = newIndex
	return r.States[r.CurrentIndex]
}

// Size returns the number of recorded states.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.States)
}

// GetStateAt returns the state at a specific index.
func (r *Replay) GetStateAt(index int) *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index >= 0 && index < len(r.States) {
		return r.States[index]
	}
	return nil
}

// Last returns the most recent state.
func (r *Replay) Last() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}
