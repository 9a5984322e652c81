package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableLayout(t *testing.T) {
	require.Equal(t, 118, Size())

	seen := make(map[Position]int)
	for i, el := range Elements() {
		assert.Equal(t, i+1, el.Number)
		if prev, dup := seen[el.Position]; dup {
			t.Fatalf("elements %d and %d share position %+v", prev, el.Number, el.Position)
		}
		seen[el.Position] = el.Number
	}

	pos, ok := PositionOf(57)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 9, Col: 3}, pos)

	pos, ok = PositionOf(118)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 7, Col: 18}, pos)

	_, ok = PositionOf(0)
	assert.False(t, ok)
	_, ok = PositionOf(119)
	assert.False(t, ok)
}

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"hydrogen over lithium", 1, 3, true},
		{"carbon beside nitrogen", 6, 7, true},
		{"carbon over silicon", 6, 14, true},
		{"hydrogen and helium far apart", 1, 2, false},
		{"diagonal", 6, 15, false},
		{"same cell", 6, 6, false},
		{"barium and hafnium across gap", 56, 72, false},
		{"lanthanum beside cerium", 57, 58, true},
		{"lanthanum over actinium", 57, 89, true},
		{"off board", 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdjacent(tt.a, tt.b))
			assert.Equal(t, tt.want, IsAdjacent(tt.b, tt.a))
		})
	}
}

func TestCategoryOf(t *testing.T) {
	c, ok := CategoryOf(8)
	require.True(t, ok)
	assert.Equal(t, CategoryReactiveNonmetal, c)

	c, ok = CategoryOf(26)
	require.True(t, ok)
	assert.Equal(t, CategoryTransitionMetal, c)
	assert.Equal(t, "TRANSITION_METAL", c.String())
}

func TestBoardOwnership(t *testing.T) {
	b := New()

	require.NoError(t, b.AddOwner(6, 1))
	require.NoError(t, b.AddOwner(6, 0))
	assert.Equal(t, []int{0, 1}, b.Occupants(6))
	assert.Error(t, b.AddOwner(6, 0), "a player holds a cell once")
	assert.Error(t, b.AddOwner(200, 0))

	require.NoError(t, b.RemoveOwner(6, 1))
	assert.Equal(t, []int{0}, b.Occupants(6))
	assert.Error(t, b.RemoveOwner(6, 1))

	require.NoError(t, b.Move(0, 6, 7))
	assert.Empty(t, b.Occupants(6))
	assert.True(t, b.IsOwnedBy(7, 0))
	assert.Equal(t, []int{7}, b.Occupied())

	assert.Error(t, b.Move(0, 6, 5), "cannot move from an unowned cell")
}
