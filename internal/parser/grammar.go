package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var toyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Decimal", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `>>>|:=|[-+*/():]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// statementNode is one line of source: `>>> expr` or `name := expr`.
type statementNode struct {
	Pos lexer.Position

	Report *expressionNode `  ">>>" @@`
	Bind   *bindNode       `| @@`
}

type bindNode struct {
	Name  string          `@Ident ":="`
	Value *expressionNode `@@`
}

// expressionNode is a parenthesized binary form, a number or a name.
type expressionNode struct {
	Pos lexer.Position

	Binary *binaryNode `  "(" @@ ")"`
	Number *numberNode `| @@`
	Name   *string     `| @Ident`
}

type binaryNode struct {
	Left  *expressionNode `@@`
	Op    string          `@("+" | "-" | "*" | "/")`
	Right *expressionNode `@@`
}

// numberNode covers integers, `num : den` rationals and decimals. A decimal
// with a denominator is rejected after parsing.
type numberNode struct {
	Pos lexer.Position

	Negative    bool         `@"-"?`
	Magnitude   string       `@(Decimal | Int)`
	Denominator *integerNode `( ":" @@ )?`
}

type integerNode struct {
	Negative bool   `@"-"?`
	Digits   string `@Int`
}

var statementParser = participle.MustBuild[statementNode](
	participle.Lexer(toyLexer),
	participle.Elide("Whitespace"),
)
