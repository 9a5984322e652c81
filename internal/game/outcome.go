package game

import "github.com/mendeleevdice/mendeleev-go/internal/game/rules"

// Outcome is the ordered list of events an accepted action produced.
type Outcome struct {
	Events []rules.Event
}

// Has reports whether any event of the given type was produced.
func (o *Outcome) Has(t rules.EventType) bool {
	_, ok := o.First(t)
	return ok
}

// First returns the earliest event of the given type.
func (o *Outcome) First(t rules.EventType) (rules.Event, bool) {
	if o == nil {
		return rules.Event{}, false
	}
	for _, evt := range o.Events {
		if evt.Type == t {
			return evt, true
		}
	}
	return rules.Event{}, false
}

// All returns every event of the given type.
func (o *Outcome) All(t rules.EventType) []rules.Event {
	if o == nil {
		return nil
	}
	var out []rules.Event
	for _, evt := range o.Events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

// Types lists event types in order.
func (o *Outcome) Types() []rules.EventType {
	if o == nil {
		return nil
	}
	out := make([]rules.EventType, len(o.Events))
	for i, evt := range o.Events {
		out[i] = evt.Type
	}
	return out
}
