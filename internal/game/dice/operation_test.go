package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		faces []int
		want  int
	}{
		{"single", OpSingle, []int{5}, 5},
		{"add", OpAdd, []int{3, 4}, 7},
		{"subtract absolute", OpSubtract, []int{2, 6}, 4},
		{"multiply", OpMultiply, []int{3, 4}, 12},
		{"divide even", OpDivide, []int{6, 3}, 2},
		{"divide uneven", OpDivide, []int{7, 2}, 0},
		{"divide uses selection order", OpDivide, []int{3, 6}, 0},
		{"divide by zero", OpDivide, []int{6, 0}, 0},
		{"concat min first", OpConcat, []int{2, 5}, 25},
		{"concat order independent", OpConcat, []int{5, 2}, 25},
		{"concat two digit face", OpConcat, []int{12, 3}, 312},
		{"wrong arity", OpAdd, []int{3}, 0},
		{"none", OpNone, []int{3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.op, tt.faces))
		})
	}
}

func TestCalculateCollapsesOutOfRange(t *testing.T) {
	assert.Equal(t, 0, Calculate(OpMultiply, []int{20, 20}, 118))
	assert.Equal(t, 118, Calculate(OpSingle, []int{118}, 118))
	assert.Equal(t, 0, Calculate(OpSubtract, []int{4, 4}, 118))
	assert.Equal(t, 25, Calculate(OpConcat, []int{5, 2}, 118))
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("concat")
	require.NoError(t, err)
	assert.Equal(t, OpConcat, op)

	op, err = ParseOperation("*")
	require.NoError(t, err)
	assert.Equal(t, OpMultiply, op)

	_, err = ParseOperation("none")
	assert.Error(t, err)
	_, err = ParseOperation("modulo")
	assert.Error(t, err)
}

func TestArity(t *testing.T) {
	assert.Equal(t, 1, OpSingle.Arity())
	assert.Equal(t, 2, OpConcat.Arity())
	assert.Equal(t, 0, OpNone.Arity())
}
