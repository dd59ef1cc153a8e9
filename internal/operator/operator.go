// Package operator defines the four binary arithmetic operators of the toy
// language.
package operator

import (
	"fmt"

	"compyle/internal/value"
)

// Operator is one of Add, Sub, Mul or Div.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

var symbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// All returns every operator in declaration order.
func All() []Operator {
	return []Operator{Add, Sub, Mul, Div}
}

// Lookup returns the operator written as symbol.
func Lookup(symbol string) (Operator, bool) {
	for op, s := range symbols {
		if s == symbol {
			return Operator(op), true
		}
	}
	return 0, false
}

// Symbol returns the source spelling of op.
func (op Operator) Symbol() string {
	if op < 0 || int(op) >= len(symbols) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return symbols[op]
}

func (op Operator) String() string {
	return op.Symbol()
}

// Apply combines a and b exactly. Div fails with a DivisionByZeroError when b
// is zero.
func (op Operator) Apply(a, b value.Value) (value.Value, error) {
	switch op {
	case Add:
		return a.Add(b), nil
	case Sub:
		return a.Sub(b), nil
	case Mul:
		return a.Mul(b), nil
	case Div:
		return a.Quo(b)
	}
	panic(fmt.Sprintf("operator: unknown operator %d", int(op)))
}

// Render writes op applied to two generated Python operands. Python's "/"
// on two ints yields a float, so the dividend is promoted to a Fraction.
func (op Operator) Render(left, right string) string {
	if op == Div {
		return fmt.Sprintf("(Fraction(%s) / %s)", left, right)
	}
	return fmt.Sprintf("(%s %s %s)", left, op.Symbol(), right)
}
