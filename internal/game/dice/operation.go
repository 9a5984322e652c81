package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation combines selected dice into a single value.
type Operation int

const (
	OpNone Operation = iota
	OpSingle
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpConcat
)

var operationNames = map[Operation]string{
	OpNone:     "NONE",
	OpSingle:   "SINGLE",
	OpAdd:      "ADD",
	OpSubtract: "SUBTRACT",
	OpMultiply: "MULTIPLY",
	OpDivide:   "DIVIDE",
	OpConcat:   "CONCAT",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OPERATION_%d", int(op))
}

// ParseOperation resolves an operation name; symbols + - * / and || are accepted too.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSubtract, nil
	case "*", "X":
		return OpMultiply, nil
	case "/":
		return OpDivide, nil
	case "||":
		return OpConcat, nil
	}
	for op, name := range operationNames {
		if op != OpNone && name == s {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("unknown operation %q", s)
}

// Arity is the exact number of dice the operation consumes.
func (op Operation) Arity() int {
	switch op {
	case OpSingle:
		return 1
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpConcat:
		return 2
	default:
		return 0
	}
}

// Evaluate applies op to the faces in selection order. It returns 0 when the
// combination has no value: wrong number of faces, or an uneven division.
func Evaluate(op Operation, faces []int) int {
	if op.Arity() == 0 || len(faces) != op.Arity() {
		return 0
	}
	if op == OpSingle {
		return faces[0]
	}
	a, b := faces[0], faces[1]
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		if a > b {
			return a - b
		}
		return b - a
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 || a%b != 0 {
			return 0
		}
		return a / b
	case OpConcat:
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		v, err := strconv.Atoi(strconv.Itoa(lo) + strconv.Itoa(hi))
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}

// Calculate evaluates op and collapses anything outside [1, max] to 0.
func Calculate(op Operation, faces []int, max int) int {
	v := Evaluate(op, faces)
	if v < 1 || v > max {
		return 0
	}
	return v
}
