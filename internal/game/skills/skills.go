// Package skills defines the skill cards a player can acquire from the score track.
package skills

import (
	"fmt"
	"strings"
)

// Skill identifies a skill card.
type Skill uint8

const (
	// Math unlocks the MULTIPLY and DIVIDE operations.
	Math Skill = 1 << iota
	// Concat unlocks the CONCAT operation.
	Concat
	// Slide lets a player move one cube to an adjacent cell after occupying.
	Slide
	// Outsource waives one missing element on a sale, once per round.
	Outsource
)

type info struct {
	id          string
	name        string
	description string
}

var registry = map[Skill]info{
	Math:      {"math", "Multiply/Divide", "Use multiplication or division on two dice."},
	Concat:    {"concat", "Concatenate", "Join two dice as a two-digit number, smaller face first."},
	Slide:     {"slide", "Slide", "After occupying, move one of your cubes to an adjacent cell."},
	Outsource: {"outsource", "Outsource", "Once per round, sell a card missing one required element."},
}

// All lists every skill in a stable order.
func All() []Skill {
	return []Skill{Math, Concat, Slide, Outsource}
}

// Parse resolves a skill id such as "math" or "outsource".
func Parse(id string) (Skill, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range All() {
		if registry[s].id == id {
			return s, true
		}
	}
	return 0, false
}

// ID returns the stable identifier used by callers and configuration.
func (s Skill) ID() string {
	if i, ok := registry[s]; ok {
		return i.id
	}
	return fmt.Sprintf("skill_%d", uint8(s))
}

// Name returns the display name.
func (s Skill) Name() string {
	return registry[s].name
}

// Description returns the rules text.
func (s Skill) Description() string {
	return registry[s].description
}

// Valid reports whether s is a single known skill.
func (s Skill) Valid() bool {
	_, ok := registry[s]
	return ok
}

func (s Skill) String() string {
	return s.ID()
}

// Set is a bitmask of held skills.
type Set uint8

// Has reports whether the set contains s.
func (set Set) Has(s Skill) bool {
	return s != 0 && Set(s)&set == Set(s)
}

// With returns the set with s added.
func (set Set) With(s Skill) Set {
	return set | Set(s)
}

// List returns the held skills in stable order.
func (set Set) List() []Skill {
	out := make([]Skill, 0, 4)
	for _, s := range All() {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// IDs returns the held skill identifiers in stable order.
func (set Set) IDs() []string {
	list := set.List()
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID()
	}
	return out
}
