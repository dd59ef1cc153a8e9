// Package parser turns toy-language source into interpret statements.
//
// Every line holds one statement. A `#` starts a comment running to the end
// of the line; blank and comment-only lines are skipped. Binary expressions
// must be parenthesized and nothing else may be.
package parser

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"compyle/compyerr"
	"compyle/internal/debug"
	"compyle/internal/expr"
	"compyle/internal/interpret"
	"compyle/internal/operator"
	"compyle/internal/value"

	"github.com/alecthomas/participle/v2"
)

// DefaultMaxDepth bounds the nesting of binary expressions. Evaluation
// recurses once per level.
const DefaultMaxDepth = 1000

// ToyParser parses toy-language source.
type ToyParser struct {
	maxDepth int
	log      *debug.Logger
}

// Option configures a ToyParser.
type Option func(*ToyParser)

// WithMaxDepth rejects expressions nested deeper than depth. Zero or less
// keeps the default.
func WithMaxDepth(depth int) Option {
	return func(p *ToyParser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithLogger traces parsed statements on the PARSING channel of l.
func WithLogger(l *debug.Logger) Option {
	return func(p *ToyParser) {
		p.log = l
	}
}

func NewToyParser(opts ...Option) *ToyParser {
	p := &ToyParser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses every line of source. Errors on different lines are all
// reported together in a MultiError.
func (p *ToyParser) Parse(source string) (interpret.Program, error) {
	var (
		program interpret.Program
		errs    []error
	)
	for i, line := range strings.Split(source, "\n") {
		stmt, ok, err := p.ParseLine(line, i+1)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			program = append(program, stmt)
		}
	}
	if len(errs) > 0 {
		return nil, &compyerr.MultiError{Errors: errs}
	}
	return program, nil
}

// ParseLine parses a single line numbered lineNo. It returns false when the
// line holds no statement.
func (p *ToyParser) ParseLine(line string, lineNo int) (interpret.Statement, bool, error) {
	code, _, _ := strings.Cut(line, "#")
	if strings.TrimSpace(code) == "" {
		return nil, false, nil
	}

	node, err := statementParser.ParseString("", code)
	if err != nil {
		return nil, false, p.syntaxError(lineNo, err)
	}
	p.log.Dump(debug.Parsing, fmt.Sprintf("line %d: %s", lineNo, strings.TrimSpace(code)), node)

	b := &builder{line: lineNo, maxDepth: p.maxDepth}
	stmt, err := b.statement(node)
	if err != nil {
		return nil, false, err
	}
	p.log.Print(debug.Parsing, stmt.String(), "line", lineNo)
	return stmt, true, nil
}

func (p *ToyParser) syntaxError(lineNo int, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return compyerr.NewParseError(lineNo, perr.Position().Column, perr.Message())
	}
	return compyerr.NewParseError(lineNo, 0, err.Error())
}

// builder converts parse nodes of one line into expressions.
type builder struct {
	line     int
	maxDepth int
}

func (b *builder) errorf(column int, format string, args ...any) error {
	return compyerr.NewParseError(b.line, column, fmt.Sprintf(format, args...))
}

func (b *builder) statement(n *statementNode) (interpret.Statement, error) {
	if n.Report != nil {
		e, err := b.expression(n.Report, 0)
		if err != nil {
			return nil, err
		}
		return &interpret.Report{Expr: e}, nil
	}
	e, err := b.expression(n.Bind.Value, 0)
	if err != nil {
		return nil, err
	}
	return &interpret.Bind{Name: n.Bind.Name, Expr: e}, nil
}

func (b *builder) expression(n *expressionNode, depth int) (expr.Expression, error) {
	switch {
	case n.Binary != nil:
		if depth >= b.maxDepth {
			return nil, b.errorf(n.Pos.Column, "expression nested deeper than %d levels", b.maxDepth)
		}
		op, ok := operator.Lookup(n.Binary.Op)
		if !ok {
			return nil, b.errorf(n.Pos.Column, "unknown operator %q", n.Binary.Op)
		}
		left, err := b.expression(n.Binary.Left, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := b.expression(n.Binary.Right, depth+1)
		if err != nil {
			return nil, err
		}
		return expr.NewBinaryOperation(op, left, right), nil
	case n.Number != nil:
		v, err := b.number(n.Number)
		if err != nil {
			return nil, err
		}
		return expr.NewLiteral(v), nil
	case n.Name != nil:
		return expr.NewReference(*n.Name), nil
	}
	return nil, b.errorf(n.Pos.Column, "empty expression")
}

func (b *builder) number(n *numberNode) (value.Value, error) {
	if whole, digits, ok := strings.Cut(n.Magnitude, "."); ok {
		if n.Denominator != nil {
			return value.Value{}, b.errorf(n.Pos.Column, "decimal literal %s cannot have a denominator", n.Magnitude)
		}
		num := parseInt(n.Negative, whole+digits)
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(digits))), nil)
		return value.Ratio(num, den)
	}

	num := parseInt(n.Negative, n.Magnitude)
	if n.Denominator == nil {
		return value.FromBigInt(num), nil
	}
	den := parseInt(n.Denominator.Negative, n.Denominator.Digits)
	if den.Sign() == 0 {
		return value.Value{}, b.errorf(n.Pos.Column, "rational literal %s:0 has a zero denominator", num)
	}
	return value.Ratio(num, den)
}

// parseInt converts lexer-validated decimal digits.
func parseInt(negative bool, digits string) *big.Int {
	n, _ := new(big.Int).SetString(digits, 10)
	if negative {
		n.Neg(n)
	}
	return n
}
