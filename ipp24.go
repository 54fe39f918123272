/*
Package ipp24 is a front end for the IPPcode24 language: it checks the
lexical and syntactic correctness of a source program and produces its XML
representation.

Consists of subpackages:
  - cmd/parse: console utility reading IPPcode24 source and writing the XML document;
  - cmd/parsetest: console utility running exit-code regression tests against a built parser;
  - source: defines source text split into lines, read from a stream or a file;
  - lexer: header detection and line tokenization;
  - grammar: fixed instruction set data, opcode signatures;
  - program: validated program representation (arguments, instructions);
  - parser: operand validation and instruction stream construction;
  - xmlgen: XML document rendering;
  - tester: exit-code regression driver used by cmd/parsetest.

Typical usage is:

1. Load the source with source.Read or source.ReadFile.

2. Create a parser.Parser for the source and drain it with Next, or collect
everything with Program.

3. Feed the collected program to xmlgen.Write.

Every failure anywhere in the pipeline is an *Error whose Code is the process
exit code the parse utility terminates with. The pipeline is fail-fast: the
first error aborts the whole run and no XML is produced.
*/
package ipp24

import (
	"fmt"
)

// Error codes used by subpackages. Each one doubles as a process exit code:
const (
	// ErrUsage indicates a forbidden command line parameter combination.
	ErrUsage = 10

	// ErrInput indicates that the source text cannot be read.
	ErrInput = 11

	// ErrOutput indicates that the XML document cannot be written.
	ErrOutput = 12

	// ErrHeader indicates a missing or malformed .IPPcode24 header.
	ErrHeader = 21

	// ErrOpcode indicates an unknown operation code.
	ErrOpcode = 22

	// ErrSyntax indicates any other lexical or syntactic error.
	ErrSyntax = 23

	// ErrInternal is the catch-all code for unanticipated failures.
	ErrInternal = 99
)

// Error is the error type used by ipp24 subpackages.
type Error struct {
	// Code contains non-zero error code, same as the corresponding exit code.
	Code int

	// Message contains non-empty error message including source name and line if provided.
	Message string

	// SourceName contains the name of the source that caused this error or empty string.
	SourceName string

	// Line contains 1-based line number in the source or 0.
	Line int
}

// SourcePos is used to attach source name and position when constructing an error;
// lexer.Line implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// LineNumber returns 1-based line number or 0.
	LineNumber() int
}

// NewError creates new Error structure.
// name and line will be added to the error message if provided (non-zero).
func NewError(code int, msg, name string, line int) *Error {
	if name != "" && line != 0 {
		msg += fmt.Sprintf(" in %s at line %d", name, line)
	}
	return &Error{code, msg, name, line}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0)
}

// FormatErrorPos creates Error structure with source name and line information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.LineNumber())
}

// Code extracts the error code from e.
// Returns 0 for nil, ErrInternal for anything that is not *Error.
func Code(e error) int {
	if e == nil {
		return 0
	}
	ee, is := e.(*Error)
	if !is {
		return ErrInternal
	}
	return ee.Code
}
