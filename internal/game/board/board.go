package board

import (
	"fmt"
	"sort"
)

// Category classifies an element for final scoring.
type Category int

const (
	CategoryAlkaliMetal Category = iota
	CategoryAlkalineEarthMetal
	CategoryTransitionMetal
	CategoryPostTransitionMetal
	CategoryMetalloid
	CategoryReactiveNonmetal
	CategoryHalogen
	CategoryNobleGas
	CategoryLanthanide
	CategoryActinide
)

var categoryNames = map[Category]string{
	CategoryAlkaliMetal:         "ALKALI_METAL",
	CategoryAlkalineEarthMetal:  "ALKALINE_EARTH_METAL",
	CategoryTransitionMetal:     "TRANSITION_METAL",
	CategoryPostTransitionMetal: "POST_TRANSITION_METAL",
	CategoryMetalloid:           "METALLOID",
	CategoryReactiveNonmetal:    "REACTIVE_NONMETAL",
	CategoryHalogen:             "HALOGEN",
	CategoryNobleGas:            "NOBLE_GAS",
	CategoryLanthanide:          "LANTHANIDE",
	CategoryActinide:            "ACTINIDE",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY_%d", int(c))
}

// Position is a 1-based row/column on the periodic table grid.
// Lanthanides sit on row 9 and actinides on row 10.
type Position struct {
	Row int
	Col int
}

// Element is a static cell of the periodic table.
type Element struct {
	Number   int
	Symbol   string
	Name     string
	Category Category
	Position Position
}

// Size returns the number of elements on the board.
func Size() int {
	return len(periodicTable)
}

// Lookup returns the element with the given atomic number.
func Lookup(number int) (Element, bool) {
	if number < 1 || number > len(periodicTable) {
		return Element{}, false
	}
	return periodicTable[number-1], true
}

// PositionOf returns the grid position of an element.
func PositionOf(number int) (Position, bool) {
	el, ok := Lookup(number)
	if !ok {
		return Position{}, false
	}
	return el.Position, true
}

// IsAdjacent reports whether two elements share an edge on the grid:
// exactly one axis differs by one and the other is equal.
func IsAdjacent(a, b int) bool {
	pa, okA := PositionOf(a)
	pb, okB := PositionOf(b)
	if !okA || !okB {
		return false
	}
	rowDiff := abs(pa.Row - pb.Row)
	colDiff := abs(pa.Col - pb.Col)
	return (rowDiff == 1 && colDiff == 0) || (rowDiff == 0 && colDiff == 1)
}

// CategoryOf returns the classification of an element.
func CategoryOf(number int) (Category, bool) {
	el, ok := Lookup(number)
	if !ok {
		return 0, false
	}
	return el.Category, true
}

// Elements returns a copy of the full table.
func Elements() []Element {
	out := make([]Element, len(periodicTable))
	copy(out, periodicTable)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Board tracks which players occupy each element.
// A player holds a given cell at most once; different players may share one.
type Board struct {
	owners map[int][]int
}

// New creates an empty board.
func New() *Board {
	return &Board{owners: make(map[int][]int, len(periodicTable))}
}

// Occupants returns the players on an element, sorted by index.
func (b *Board) Occupants(number int) []int {
	owners := b.owners[number]
	out := make([]int, len(owners))
	copy(out, owners)
	sort.Ints(out)
	return out
}

// IsOwnedBy reports whether player occupies the element.
func (b *Board) IsOwnedBy(number, player int) bool {
	for _, owner := range b.owners[number] {
		if owner == player {
			return true
		}
	}
	return false
}

// AddOwner places player on an element.
func (b *Board) AddOwner(number, player int) error {
	if _, ok := Lookup(number); !ok {
		return fmt.Errorf("element %d is not on the board", number)
	}
	if b.IsOwnedBy(number, player) {
		return fmt.Errorf("player %d already occupies element %d", player, number)
	}
	b.owners[number] = append(b.owners[number], player)
	return nil
}

// RemoveOwner takes player off an element.
func (b *Board) RemoveOwner(number, player int) error {
	owners := b.owners[number]
	for i, owner := range owners {
		if owner == player {
			b.owners[number] = append(owners[:i], owners[i+1:]...)
			if len(b.owners[number]) == 0 {
				delete(b.owners, number)
			}
			return nil
		}
	}
	return fmt.Errorf("player %d does not occupy element %d", player, number)
}

// Move relocates player from one element to another in a single step.
func (b *Board) Move(player, from, to int) error {
	if !b.IsOwnedBy(from, player) {
		return fmt.Errorf("player %d does not occupy element %d", player, from)
	}
	if err := b.AddOwner(to, player); err != nil {
		return err
	}
	return b.RemoveOwner(from, player)
}

// Occupied returns every occupied element number in ascending order.
func (b *Board) Occupied() []int {
	out := make([]int, 0, len(b.owners))
	for number := range b.owners {
		out = append(out, number)
	}
	sort.Ints(out)
	return out
}
