package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"compyle/internal/expr"
	"compyle/internal/transpiler"
)

// prelude defines the runtime the generated fragments rely on: Fraction for
// exact rationals, a Binding whose evaluate() runs its thunk, and show() to
// print values the way the interpreter does.
var prelude = `# Code generated by compyle. DO NOT EDIT.
from fractions import Fraction


class Binding:
    def __init__(self, thunk):
        self.thunk = thunk

    def evaluate(self):
        return self.thunk()


def show(value):
    value = Fraction(value)
    if value.denominator == 1:
        return str(value.numerator)
    return f"{value.numerator}:{value.denominator}"


` + expr.NamespaceVar + ` = {}
`

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type pythonCodeGenerator struct {
}

// NewPythonCodeGenerator creates a new instance of CodeGenerator that generates Python code.
func NewPythonCodeGenerator() transpiler.CodeGenerator {
	return &pythonCodeGenerator{}
}

// Generate implements the CodeGenerator interface.
func (g *pythonCodeGenerator) Generate(instructions []transpiler.Instruction) (string, error) {
	var sb strings.Builder
	sb.WriteString(prelude)

	for _, inst := range instructions {
		if inst.Code == "" {
			return "", fmt.Errorf("%s instruction %q has no code", inst.Kind, inst.Origin)
		}
		sb.WriteString("\n")
		if inst.Origin != "" {
			sb.WriteString("# " + strings.ReplaceAll(inst.Origin, "\n", " ") + "\n")
		}
		switch inst.Kind {
		case transpiler.BindInstruction:
			if !identifier.MatchString(inst.Name) {
				return "", fmt.Errorf("invalid name %q in bind instruction", inst.Name)
			}
			sb.WriteString(fmt.Sprintf("%s[%s] = Binding(lambda: %s)\n", expr.NamespaceVar, strconv.Quote(inst.Name), inst.Code))
		case transpiler.PrintInstruction:
			sb.WriteString(fmt.Sprintf("print(show(%s))\n", inst.Code))
		default:
			return "", fmt.Errorf("unsupported instruction kind %s", inst.Kind)
		}
	}
	return sb.String(), nil
}

var _ transpiler.CodeGenerator = (*pythonCodeGenerator)(nil)
