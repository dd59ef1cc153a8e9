package value_test

import (
	"math/big"
	"testing"

	"compyle/compyerr"
	"compyle/internal/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frac(t *testing.T, num, den int64) value.Value {
	t.Helper()
	v, err := value.Frac(num, den)
	require.NoError(t, err)
	return v
}

func TestFracLowestTerms(t *testing.T) {
	tests := []struct {
		num, den int64
		want     string
	}{
		{4, 12, "1:3"},
		{9, 12, "3:4"},
		{-9, 12, "-3:4"},
		{9, -12, "-3:4"},
		{-9, -12, "3:4"},
		{12, 4, "3"},
		{0, 7, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			v := frac(t, tt.num, tt.den)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, 1, v.Denom().Sign())
		})
	}
}

func TestFracZeroDenominator(t *testing.T) {
	_, err := value.Frac(1, 0)
	assert.True(t, compyerr.IsType(err, compyerr.TypeDivisionByZero))
}

func TestIntegerRationalInterchangeable(t *testing.T) {
	three := value.Int(3)
	alsoThree := frac(t, 6, 2)

	assert.True(t, three.Equal(alsoThree))
	assert.True(t, alsoThree.IsInt())
	assert.Equal(t, "6", three.Add(alsoThree).String())
}

func TestArithmetic(t *testing.T) {
	third := frac(t, 1, 3)
	half := frac(t, 1, 2)

	assert.Equal(t, "5:6", third.Add(half).String())
	assert.Equal(t, "-1:6", third.Sub(half).String())
	assert.Equal(t, "1:6", third.Mul(half).String())

	q, err := third.Quo(half)
	require.NoError(t, err)
	assert.Equal(t, "2:3", q.String())

	q, err = value.Int(3).Quo(value.Int(4))
	require.NoError(t, err)
	assert.Equal(t, "3:4", q.String())
}

func TestQuoByZero(t *testing.T) {
	_, err := value.Int(3).Quo(value.Int(0))
	assert.True(t, compyerr.IsType(err, compyerr.TypeDivisionByZero))

	_, err = value.Int(3).Quo(value.Value{})
	assert.True(t, compyerr.IsType(err, compyerr.TypeDivisionByZero))
}

func TestZeroValue(t *testing.T) {
	var zero value.Value
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.True(t, zero.Equal(value.Int(0)))
	assert.Equal(t, "5", zero.Add(value.Int(5)).String())
}

func TestImmutableAccessors(t *testing.T) {
	v := frac(t, 2, 3)
	v.Num().SetInt64(100)
	v.Rat().SetInt64(7)
	assert.Equal(t, "2:3", v.String())
}

func TestArbitraryPrecision(t *testing.T) {
	big1, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	v := value.FromBigInt(big1).Mul(value.FromBigInt(big1))
	assert.Equal(t, "15241578753238836750495351562536198787501905199875019052100", v.String())
}
