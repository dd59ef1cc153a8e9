// Package expr implements the expression tree of the toy language and the
// three operations every node supports: evaluation, specialization and
// transpilation to Python.
//
// The tree is closed: Literal, Reference and BinaryOperation are the only
// Expressions, and each operation is a single type switch over them.
// Trees are immutable; Specialize builds new nodes and never edits old ones.
package expr

import (
	"fmt"

	"compyle/compyerr"
	"compyle/internal/operator"
	"compyle/internal/value"
)

// NamespaceVar is the name of the runtime namespace object that generated
// Python code looks references up in.
const NamespaceVar = "__namespace__"

// Scope resolves names to the expressions bound to them.
type Scope interface {
	Get(name string) (Expression, bool)
}

// Expression is a node of the expression tree.
type Expression interface {
	// Evaluate computes the value of the expression, resolving references
	// through scope.
	Evaluate(scope Scope) (value.Value, error)
	// Specialize returns a new tree in which every name bound in scope is
	// replaced by its value. The only possible error is a division by zero
	// between two literals.
	Specialize(scope Scope) (Expression, error)
	// Transpile returns Python source that computes the same value given a
	// runtime namespace named NamespaceVar.
	Transpile() string
	// String returns the canonical toy-language source of the expression.
	String() string

	isExpression()
}

// Literal is a constant value.
type Literal struct {
	Value value.Value
}

// Reference names a value held in a scope.
type Reference struct {
	Name string
}

// BinaryOperation applies Op to the values of Left and Right.
type BinaryOperation struct {
	Op    operator.Operator
	Left  Expression
	Right Expression
}

func NewLiteral(v value.Value) *Literal {
	return &Literal{Value: v}
}

func NewReference(name string) *Reference {
	return &Reference{Name: name}
}

func NewBinaryOperation(op operator.Operator, left, right Expression) *BinaryOperation {
	return &BinaryOperation{Op: op, Left: left, Right: right}
}

func (*Literal) isExpression()         {}
func (*Reference) isExpression()       {}
func (*BinaryOperation) isExpression() {}

func (l *Literal) Evaluate(scope Scope) (value.Value, error) {
	return newResolver(scope).evaluate(l)
}

func (r *Reference) Evaluate(scope Scope) (value.Value, error) {
	return newResolver(scope).evaluate(r)
}

func (b *BinaryOperation) Evaluate(scope Scope) (value.Value, error) {
	return newResolver(scope).evaluate(b)
}

func (l *Literal) Specialize(scope Scope) (Expression, error) {
	return newResolver(scope).specialize(l)
}

func (r *Reference) Specialize(scope Scope) (Expression, error) {
	return newResolver(scope).specialize(r)
}

func (b *BinaryOperation) Specialize(scope Scope) (Expression, error) {
	return newResolver(scope).specialize(b)
}

func (l *Literal) Transpile() string         { return transpile(l) }
func (r *Reference) Transpile() string       { return transpile(r) }
func (b *BinaryOperation) Transpile() string { return transpile(b) }

func (l *Literal) String() string { return l.Value.String() }

func (r *Reference) String() string { return r.Name }

func (b *BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Symbol(), b.Right)
}

// resolver carries the scope of one operation together with the names
// currently being resolved, so that a binding chain leading back to its own
// name is detected instead of recursing forever.
type resolver struct {
	scope  Scope
	active map[string]bool
}

func newResolver(scope Scope) *resolver {
	return &resolver{scope: scope, active: make(map[string]bool)}
}

func (r *resolver) lookup(name string) (Expression, bool) {
	if r.scope == nil {
		return nil, false
	}
	return r.scope.Get(name)
}

func (r *resolver) evaluate(e Expression) (value.Value, error) {
	switch n := e.(type) {
	case *Literal:
		return n.Value, nil
	case *Reference:
		bound, ok := r.lookup(n.Name)
		if !ok {
			return value.Value{}, compyerr.NewUnboundNameError(n.Name)
		}
		if r.active[n.Name] {
			return value.Value{}, compyerr.NewRecursiveBindingError(n.Name)
		}
		r.active[n.Name] = true
		defer delete(r.active, n.Name)
		return r.evaluate(bound)
	case *BinaryOperation:
		left, err := r.evaluate(n.Left)
		if err != nil {
			return value.Value{}, err
		}
		right, err := r.evaluate(n.Right)
		if err != nil {
			return value.Value{}, err
		}
		return n.Op.Apply(left, right)
	}
	panic(fmt.Sprintf("expr: unexpected expression %T", e))
}

func (r *resolver) specialize(e Expression) (Expression, error) {
	switch n := e.(type) {
	case *Literal:
		return n, nil
	case *Reference:
		bound, ok := r.lookup(n.Name)
		if !ok || r.active[n.Name] {
			return n, nil
		}
		r.active[n.Name] = true
		defer delete(r.active, n.Name)
		return r.specialize(bound)
	case *BinaryOperation:
		left, err := r.specialize(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := r.specialize(n.Right)
		if err != nil {
			return nil, err
		}
		l, lok := left.(*Literal)
		rl, rok := right.(*Literal)
		if lok && rok {
			v, err := n.Op.Apply(l.Value, rl.Value)
			if err != nil {
				return nil, err
			}
			return NewLiteral(v), nil
		}
		return NewBinaryOperation(n.Op, left, right), nil
	}
	panic(fmt.Sprintf("expr: unexpected expression %T", e))
}

func transpile(e Expression) string {
	switch n := e.(type) {
	case *Literal:
		if n.Value.IsInt() {
			return n.Value.Num().String()
		}
		return fmt.Sprintf("Fraction(%s, %s)", n.Value.Num(), n.Value.Denom())
	case *Reference:
		return fmt.Sprintf("%s[%q].evaluate()", NamespaceVar, n.Name)
	case *BinaryOperation:
		return n.Op.Render(transpile(n.Left), transpile(n.Right))
	}
	panic(fmt.Sprintf("expr: unexpected expression %T", e))
}

// Equal reports whether a and b are the same tree: the same variants with
// equal fields, recursively. Literals compare by numeric value.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value.Equal(y.Value)
	case *Reference:
		y, ok := b.(*Reference)
		return ok && x.Name == y.Name
	case *BinaryOperation:
		y, ok := b.(*BinaryOperation)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return a == nil && b == nil
}
