// Package namespace provides the flat name binding table of a program run.
package namespace

import (
	"maps"
	"slices"

	"compyle/internal/expr"
)

// Namespace maps names to the expressions bound to them. A later Set of the
// same name replaces the earlier binding; bindings are never removed.
//
// A Namespace belongs to a single interpreter run and is not safe for
// concurrent use.
type Namespace struct {
	bindings map[string]expr.Expression
}

// New returns an empty Namespace.
func New() *Namespace {
	return &Namespace{bindings: make(map[string]expr.Expression)}
}

// Get returns the expression bound to name.
func (n *Namespace) Get(name string) (expr.Expression, bool) {
	e, ok := n.bindings[name]
	return e, ok
}

// Set binds name to e, replacing any previous binding.
func (n *Namespace) Set(name string, e expr.Expression) {
	n.bindings[name] = e
}

func (n *Namespace) Len() int {
	return len(n.bindings)
}

// Names returns the bound names in sorted order.
func (n *Namespace) Names() []string {
	return slices.Sorted(maps.Keys(n.bindings))
}

var _ expr.Scope = (*Namespace)(nil)
