package transpiler

import (
	"compyle/internal/interpret"
	"compyle/internal/parser"
)

type toyParser struct {
	wrapper *parser.ToyParser
}

// NewToyParser creates a new SourceParser implementation using the toy-language grammar.
func NewToyParser(opts ...parser.Option) SourceParser {
	return &toyParser{
		wrapper: parser.NewToyParser(opts...),
	}
}

// Parse implements the SourceParser interface.
func (p *toyParser) Parse(source string) (interpret.Program, error) {
	return p.wrapper.Parse(source)
}

// Ensure toyParser implements SourceParser interface.
var _ SourceParser = (*toyParser)(nil)
