package namespace_test

import (
	"testing"

	"compyle/internal/expr"
	"compyle/internal/namespace"
	"compyle/internal/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissing(t *testing.T) {
	ns := namespace.New()
	_, ok := ns.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, ns.Len())
}

func TestSetOverwrites(t *testing.T) {
	ns := namespace.New()
	ns.Set("x", expr.NewLiteral(value.Int(1)))
	ns.Set("x", expr.NewReference("y"))

	got, ok := ns.Get("x")
	require.True(t, ok)
	assert.True(t, expr.Equal(expr.NewReference("y"), got))
	assert.Equal(t, 1, ns.Len())
}

func TestNamesSorted(t *testing.T) {
	ns := namespace.New()
	for _, name := range []string{"foo", "bar", "baz"} {
		ns.Set(name, expr.NewLiteral(value.Int(0)))
	}
	assert.Equal(t, []string{"bar", "baz", "foo"}, ns.Names())
}
