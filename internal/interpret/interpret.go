// Package interpret runs toy-language programs: it executes statements in
// order against one namespace and streams the reported values.
package interpret

import (
	"iter"

	"compyle/internal/debug"
	"compyle/internal/expr"
	"compyle/internal/namespace"
	"compyle/internal/value"
)

// Statement is a single instruction of a Program.
type Statement interface {
	// String returns the canonical source of the statement.
	String() string

	isStatement()
}

// Bind stores the specialization of Expr under Name.
type Bind struct {
	Name string
	Expr expr.Expression
}

// Report evaluates Expr and hands the value to the caller.
type Report struct {
	Expr expr.Expression
}

func (*Bind) isStatement()   {}
func (*Report) isStatement() {}

func (b *Bind) String() string   { return b.Name + " := " + b.Expr.String() }
func (r *Report) String() string { return ">>> " + r.Expr.String() }

// Program is an ordered sequence of statements.
type Program []Statement

// Interpreter executes statements against the namespace it owns.
type Interpreter struct {
	ns  *namespace.Namespace
	log *debug.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger traces execution on the INTERPRET and TRANSPILE channels of l.
func WithLogger(l *debug.Logger) Option {
	return func(in *Interpreter) {
		in.log = l
	}
}

// WithNamespace runs against ns instead of a fresh namespace.
func WithNamespace(ns *namespace.Namespace) Option {
	return func(in *Interpreter) {
		in.ns = ns
	}
}

// New returns an Interpreter with an empty namespace.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	if in.ns == nil {
		in.ns = namespace.New()
	}
	return in
}

// Namespace returns the bindings made so far.
func (in *Interpreter) Namespace() *namespace.Namespace {
	return in.ns
}

// Execute runs a single statement. For a Report it returns the value and
// true; for a Bind it returns false.
func (in *Interpreter) Execute(stmt Statement) (value.Value, bool, error) {
	switch s := stmt.(type) {
	case *Bind:
		return value.Value{}, false, in.bind(s)
	case *Report:
		v, err := in.report(s)
		if err != nil {
			return value.Value{}, false, err
		}
		return v, true, nil
	}
	panic("interpret: unexpected statement")
}

func (in *Interpreter) bind(s *Bind) error {
	specialized, err := s.Expr.Specialize(in.ns)
	if err != nil {
		return err
	}
	if expr.Equal(specialized, s.Expr) {
		in.log.Print(debug.Interpret, s.String())
	} else {
		in.log.Print(debug.Interpret, s.String(), "specialized", specialized.String())
	}
	in.ns.Set(s.Name, specialized)
	return nil
}

func (in *Interpreter) report(s *Report) (value.Value, error) {
	in.log.Print(debug.Interpret, s.String())
	in.log.Print(debug.Transpile, s.String(), "python", s.Expr.Transpile())
	return s.Expr.Evaluate(in.ns)
}

// Run executes program lazily: statements run as the sequence is consumed,
// yielding one value per Report. The first error is yielded with a zero
// value and ends the sequence; bindings made before it are kept.
func (in *Interpreter) Run(program Program) iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		for _, stmt := range program {
			v, ok, err := in.Execute(stmt)
			if err != nil {
				yield(value.Value{}, err)
				return
			}
			if ok && !yield(v, nil) {
				return
			}
		}
	}
}

// Run executes program with a fresh Interpreter.
func Run(program Program, opts ...Option) iter.Seq2[value.Value, error] {
	return New(opts...).Run(program)
}

// Collect drains seq, returning the values produced before the first error.
func Collect(seq iter.Seq2[value.Value, error]) ([]value.Value, error) {
	var values []value.Value
	for v, err := range seq {
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
