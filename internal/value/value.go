// Package value implements the exact integer/rational numbers that compyle
// programs evaluate to.
package value

import (
	"math/big"

	"compyle/compyerr"
)

// Value is an exact rational number in lowest terms. An integer is a Value
// whose denominator is 1. The zero Value is 0.
//
// Values are immutable: arithmetic always returns a fresh Value and the
// accessors hand out copies.
type Value struct {
	r *big.Rat
}

// Int returns the Value of n.
func Int(n int64) Value {
	return Value{r: new(big.Rat).SetInt64(n)}
}

// FromBigInt returns the Value of n.
func FromBigInt(n *big.Int) Value {
	return Value{r: new(big.Rat).SetInt(n)}
}

// FromRat returns the Value of r.
func FromRat(r *big.Rat) Value {
	return Value{r: new(big.Rat).Set(r)}
}

// Frac returns the Value num/den reduced to lowest terms.
func Frac(num, den int64) (Value, error) {
	return Ratio(big.NewInt(num), big.NewInt(den))
}

// Ratio returns the Value num/den reduced to lowest terms. A zero
// denominator yields a DivisionByZeroError.
func Ratio(num, den *big.Int) (Value, error) {
	if den.Sign() == 0 {
		return Value{}, compyerr.NewDivisionByZeroError()
	}
	return Value{r: new(big.Rat).SetFrac(num, den)}, nil
}

func (v Value) rat() *big.Rat {
	if v.r == nil {
		return new(big.Rat)
	}
	return v.r
}

// Rat returns a copy of v as a big.Rat.
func (v Value) Rat() *big.Rat {
	return new(big.Rat).Set(v.rat())
}

// Num returns the numerator of v.
func (v Value) Num() *big.Int {
	return new(big.Int).Set(v.rat().Num())
}

// Denom returns the denominator of v, always positive.
func (v Value) Denom() *big.Int {
	return new(big.Int).Set(v.rat().Denom())
}

func (v Value) IsInt() bool {
	return v.rat().IsInt()
}

func (v Value) IsZero() bool {
	return v.rat().Sign() == 0
}

func (v Value) Sign() int {
	return v.rat().Sign()
}

func (v Value) Add(w Value) Value {
	return Value{r: new(big.Rat).Add(v.rat(), w.rat())}
}

func (v Value) Sub(w Value) Value {
	return Value{r: new(big.Rat).Sub(v.rat(), w.rat())}
}

func (v Value) Mul(w Value) Value {
	return Value{r: new(big.Rat).Mul(v.rat(), w.rat())}
}

// Quo returns v/w, or a DivisionByZeroError when w is zero.
func (v Value) Quo(w Value) (Value, error) {
	if w.IsZero() {
		return Value{}, compyerr.NewDivisionByZeroError()
	}
	return Value{r: new(big.Rat).Quo(v.rat(), w.rat())}, nil
}

// Equal reports whether v and w are the same number.
func (v Value) Equal(w Value) bool {
	return v.rat().Cmp(w.rat()) == 0
}

// String renders integers as plain digits and other values as "num:den".
func (v Value) String() string {
	r := v.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + ":" + r.Denom().String()
}
