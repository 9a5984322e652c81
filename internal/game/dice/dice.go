// Package dice provides die types, rolling, and the arithmetic used to turn
// selected faces into an element number.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
)

// Source is the randomness provider for rolls and shuffles.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// NewSource returns a math/rand source. A zero seed draws one from crypto/rand.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = newSeed()
	}
	return rand.New(rand.NewSource(seed))
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Type is a die shape.
type Type string

const (
	D4  Type = "d4"
	D6  Type = "d6"
	D8  Type = "d8"
	D10 Type = "d10"
	D12 Type = "d12"
	D20 Type = "d20"
)

var sides = map[Type]int{
	D4:  4,
	D6:  6,
	D8:  8,
	D10: 10,
	D12: 12,
	D20: 20,
}

// Types lists every known die type from fewest to most sides.
func Types() []Type {
	return []Type{D4, D6, D8, D10, D12, D20}
}

// ParseType resolves "d6", "D6" or "6" to a die type.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "d") {
		s = "d" + s
	}
	t := Type(s)
	if _, ok := sides[t]; !ok {
		return "", fmt.Errorf("unknown die type %q", s)
	}
	return t, nil
}

// Sides returns the number of faces, or 0 for an unknown type.
func (t Type) Sides() int {
	return sides[t]
}

// Valid reports whether t is a known die type.
func (t Type) Valid() bool {
	_, ok := sides[t]
	return ok
}

// Die is one of a player's dice.
// Locked dice were spent on an occupation and never roll or select again.
type Die struct {
	Type     Type
	Value    int
	Selected bool
	Locked   bool
}

// New creates an unlocked die showing 1.
func New(t Type) *Die {
	return &Die{Type: t, Value: 1}
}

// Roll sets a uniform random face. Locked dice keep their face.
func (d *Die) Roll(src Source) int {
	if d.Locked {
		return d.Value
	}
	n := d.Type.Sides()
	if n <= 0 {
		return d.Value
	}
	d.Value = src.Intn(n) + 1
	return d.Value
}

// Lock spends the die permanently.
func (d *Die) Lock() {
	d.Selected = false
	d.Locked = true
}

// Copy returns a detached copy.
func (d *Die) Copy() *Die {
	c := *d
	return &c
}
