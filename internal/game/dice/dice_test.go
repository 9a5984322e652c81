package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed Intn results.
type scriptedSource struct {
	values []int
	calls  []int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func TestParseType(t *testing.T) {
	for _, in := range []string{"d6", "D6", " 6 "} {
		typ, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, D6, typ)
	}

	_, err := ParseType("d7")
	assert.Error(t, err)

	assert.Equal(t, 20, D20.Sides())
	assert.Equal(t, 0, Type("d3").Sides())
}

func TestRoll(t *testing.T) {
	src := &scriptedSource{values: []int{3, 7}}
	d := New(D8)

	assert.Equal(t, 4, d.Roll(src))
	assert.Equal(t, []int{8}, src.calls)

	d.Lock()
	assert.True(t, d.Locked)
	assert.False(t, d.Selected)
	assert.Equal(t, 4, d.Roll(src), "locked dice never roll")
	assert.Len(t, src.calls, 1)
}

func TestRollStaysInRange(t *testing.T) {
	src := NewSource(42)
	for _, typ := range Types() {
		d := New(typ)
		for i := 0; i < 200; i++ {
			v := d.Roll(src)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, typ.Sides())
		}
	}
}
