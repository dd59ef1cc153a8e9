package transpiler

import (
	"compyle/internal/interpret"
)

// SourceParser defines the interface for parsing toy-language source code.
type SourceParser interface {
	Parse(source string) (interpret.Program, error)
}

// ProgramTransformer lowers a parsed program into target instructions.
type ProgramTransformer interface {
	Transform(program interpret.Program) ([]Instruction, error)
}

// CodeGenerator generates a complete target program from instructions.
type CodeGenerator interface {
	Generate(instructions []Instruction) (string, error)
}

// Transpiler defines the high-level interface for the toy language to Python conversion.
type Transpiler interface {
	Transpile(source string) (string, error)
}

// ToyToPythonTranspiler orchestrates the transpilation process.
type ToyToPythonTranspiler struct {
	parser      SourceParser
	transformer ProgramTransformer
	generator   CodeGenerator
}

// NewToyToPythonTranspiler creates a new instance of ToyToPythonTranspiler with its dependencies.
func NewToyToPythonTranspiler(
	parser SourceParser,
	transformer ProgramTransformer,
	generator CodeGenerator,
) *ToyToPythonTranspiler {
	return &ToyToPythonTranspiler{
		parser:      parser,
		transformer: transformer,
		generator:   generator,
	}
}

// Transpile executes the full transpilation pipeline.
func (t *ToyToPythonTranspiler) Transpile(source string) (string, error) {
	program, err := t.parser.Parse(source)
	if err != nil {
		return "", err
	}

	instructions, err := t.transformer.Transform(program)
	if err != nil {
		return "", err
	}

	return t.generator.Generate(instructions)
}

var _ Transpiler = (*ToyToPythonTranspiler)(nil)
