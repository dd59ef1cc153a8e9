package compyerr_test

import (
	"compyle/compyerr"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	err := compyerr.NewParseError(10, 5, "unexpected token")
	assert.Equal(t, compyerr.TypeParse, err.Type())
	assert.Equal(t, 10, err.Line)
	assert.Equal(t, 5, err.Column)
	assert.Equal(t, "[ParseError] line 10:5 unexpected token", err.Error())
}

func TestParseErrorNoPosition(t *testing.T) {
	err := compyerr.NewParseError(0, 0, "empty program")
	assert.Equal(t, "[ParseError] empty program", err.Error())
}

func TestUnboundNameError(t *testing.T) {
	err := compyerr.NewUnboundNameError("x")
	assert.Equal(t, compyerr.TypeUnboundName, err.Type())
	assert.Equal(t, "x", err.Name)
	assert.Equal(t, `[UnboundNameError] name "x" is not defined`, err.Error())
}

func TestDivisionByZeroError(t *testing.T) {
	err := compyerr.NewDivisionByZeroError()
	assert.Equal(t, compyerr.TypeDivisionByZero, err.Type())
	assert.Equal(t, "[DivisionByZeroError] division by zero", err.Error())
}

func TestRecursiveBindingError(t *testing.T) {
	err := compyerr.NewRecursiveBindingError("y")
	assert.Equal(t, compyerr.TypeRecursiveBinding, err.Type())
	assert.Equal(t, "y", err.Name)
	assert.Contains(t, err.Error(), "bound in terms of itself")
}

func TestMultiError(t *testing.T) {
	e1 := compyerr.NewParseError(1, 1, "error 1")
	e2 := compyerr.NewParseError(2, 2, "error 2")
	multi := &compyerr.MultiError{Errors: []error{e1, e2}}

	assert.Equal(t, compyerr.TypeParse, multi.Type())
	errMsg := multi.Error()
	assert.Contains(t, errMsg, "2 error(s) occurred:")
	assert.Contains(t, errMsg, "- [ParseError] line 1:1 error 1")
	assert.Contains(t, errMsg, "- [ParseError] line 2:2 error 2")

	var pe *compyerr.ParseError
	assert.True(t, errors.As(multi, &pe))
	assert.Equal(t, 1, pe.Line)
}

func TestMultiErrorEmpty(t *testing.T) {
	multi := &compyerr.MultiError{Errors: []error{}}
	assert.Equal(t, compyerr.ErrorType("MultiError"), multi.Type())
	assert.True(t, strings.HasPrefix(multi.Error(), "0 error(s) occurred:"))
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		typ  compyerr.ErrorType
		want bool
	}{
		{"direct", compyerr.NewDivisionByZeroError(), compyerr.TypeDivisionByZero, true},
		{"wrapped", fmt.Errorf("line 3: %w", compyerr.NewUnboundNameError("a")), compyerr.TypeUnboundName, true},
		{"other kind", compyerr.NewUnboundNameError("a"), compyerr.TypeParse, false},
		{"collected", &compyerr.MultiError{Errors: []error{compyerr.NewParseError(1, 1, "x")}}, compyerr.TypeParse, true},
		{"plain error", errors.New("boom"), compyerr.TypeParse, false},
		{"nil", nil, compyerr.TypeParse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compyerr.IsType(tt.err, tt.typ))
		})
	}
}
