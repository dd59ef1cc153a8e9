package transpiler

import "fmt"

// InstructionKind distinguishes the two kinds of generated statements.
type InstructionKind int

const (
	// BindInstruction stores a deferred computation in the runtime namespace.
	BindInstruction InstructionKind = iota
	// PrintInstruction prints a computed value.
	PrintInstruction
)

func (k InstructionKind) String() string {
	switch k {
	case BindInstruction:
		return "bind"
	case PrintInstruction:
		return "print"
	}
	return fmt.Sprintf("InstructionKind(%d)", int(k))
}

// Instruction is one lowered statement of a program.
type Instruction struct {
	Kind InstructionKind
	// Name is the bound name of a BindInstruction.
	Name string
	// Code is the Python expression computing the value.
	Code string
	// Origin is the toy-language source the instruction was lowered from.
	Origin string
}
