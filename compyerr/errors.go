// Package compyerr defines the error kinds raised by the compyle parser and core.
package compyerr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeParse            ErrorType = "ParseError"
	TypeUnboundName      ErrorType = "UnboundNameError"
	TypeDivisionByZero   ErrorType = "DivisionByZeroError"
	TypeRecursiveBinding ErrorType = "RecursiveBindingError"
)

// CompyleError is the interface for all compyle errors.
type CompyleError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for compyle errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// ParseError represents malformed program text.
type ParseError struct {
	BaseError
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d:%d %s", e.ErrType, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

// UnboundNameError is raised when a reference names nothing in the namespace.
type UnboundNameError struct {
	BaseError
	Name string
}

// DivisionByZeroError is raised when the right operand of a division is zero.
type DivisionByZeroError struct {
	BaseError
}

// RecursiveBindingError is raised when resolving a name leads back to itself.
type RecursiveBindingError struct {
	BaseError
	Name string
}

// MultiError collects multiple compyle errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if ce, ok := m.Errors[0].(CompyleError); ok {
			return ce.Type()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// NewParseError creates a new ParseError.
func NewParseError(line, column int, msg string) *ParseError {
	return &ParseError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeParse,
		},
		Line:   line,
		Column: column,
	}
}

// NewUnboundNameError creates a new UnboundNameError for name.
func NewUnboundNameError(name string) *UnboundNameError {
	return &UnboundNameError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("name %q is not defined", name),
			ErrType: TypeUnboundName,
		},
		Name: name,
	}
}

// NewDivisionByZeroError creates a new DivisionByZeroError.
func NewDivisionByZeroError() *DivisionByZeroError {
	return &DivisionByZeroError{
		BaseError: BaseError{
			Msg:     "division by zero",
			ErrType: TypeDivisionByZero,
		},
	}
}

// NewRecursiveBindingError creates a new RecursiveBindingError for name.
func NewRecursiveBindingError(name string) *RecursiveBindingError {
	return &RecursiveBindingError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("name %q is bound in terms of itself", name),
			ErrType: TypeRecursiveBinding,
		},
		Name: name,
	}
}

// IsType reports whether err is, wraps or collects a compyle error of type t.
func IsType(err error, t ErrorType) bool {
	var multi *MultiError
	if errors.As(err, &multi) {
		for _, e := range multi.Errors {
			if IsType(e, t) {
				return true
			}
		}
		return false
	}
	var ce CompyleError
	return errors.As(err, &ce) && ce.Type() == t
}
