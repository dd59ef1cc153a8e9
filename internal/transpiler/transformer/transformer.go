package transformer

import (
	"fmt"

	"compyle/internal/debug"
	"compyle/internal/interpret"
	"compyle/internal/namespace"
	"compyle/internal/transpiler"
)

type toyProgramTransformer struct {
	// shadow mirrors the runtime namespace at each point of the program, so
	// binds capture the same specialization the interpreter would store.
	shadow *namespace.Namespace
	log    *debug.Logger
}

// NewToyProgramTransformer creates a new instance of ProgramTransformer for the toy language.
func NewToyProgramTransformer(log *debug.Logger) transpiler.ProgramTransformer {
	return &toyProgramTransformer{log: log}
}

func (t *toyProgramTransformer) Transform(program interpret.Program) ([]transpiler.Instruction, error) {
	t.shadow = namespace.New()

	instructions := make([]transpiler.Instruction, 0, len(program))
	for _, stmt := range program {
		inst, err := t.transformStatement(stmt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stmt, err)
		}
		t.log.Print(debug.Transpile, inst.Origin, "python", inst.Code)
		instructions = append(instructions, inst)
	}
	return instructions, nil
}

func (t *toyProgramTransformer) transformStatement(stmt interpret.Statement) (transpiler.Instruction, error) {
	switch s := stmt.(type) {
	case *interpret.Bind:
		specialized, err := s.Expr.Specialize(t.shadow)
		if err != nil {
			return transpiler.Instruction{}, err
		}
		t.shadow.Set(s.Name, specialized)
		return transpiler.Instruction{
			Kind:   transpiler.BindInstruction,
			Name:   s.Name,
			Code:   specialized.Transpile(),
			Origin: s.String(),
		}, nil
	case *interpret.Report:
		return transpiler.Instruction{
			Kind:   transpiler.PrintInstruction,
			Code:   s.Expr.Transpile(),
			Origin: s.String(),
		}, nil
	}
	return transpiler.Instruction{}, fmt.Errorf("unsupported statement %T", stmt)
}

var _ transpiler.ProgramTransformer = (*toyProgramTransformer)(nil)
