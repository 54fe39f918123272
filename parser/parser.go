// Package parser turns tokenized IPPcode24 lines into validated
// instructions. Dispatch is a single table lookup in grammar.Opcodes plus an
// exact arity check; every operand position is validated by the grammar of
// its kind. The parser is fail-fast: the first error aborts the whole run
// and no further instructions are produced.
package parser

import (
	"github.com/Michal418/ipp24"
	"github.com/Michal418/ipp24/grammar"
	"github.com/Michal418/ipp24/lexer"
	"github.com/Michal418/ipp24/program"
	"github.com/Michal418/ipp24/source"
)

// Parser produces the instruction sequence of one source, one instruction
// per accepted line. It is a single-pass, non-restartable consumer: the
// order counter advances only when an instruction is actually produced, so
// the stream must be drained exactly once.
type Parser struct {
	lx       *lexer.Lexer
	name     string
	order    int
	started  bool
	err      error
	finished bool
}

// New creates new Parser for src. No input is consumed until the first Next
// or Program call.
func New(src *source.Source) *Parser {
	return &Parser{lx: lexer.New(src), name: src.Name()}
}

// Next returns the next instruction in source order.
// The first call locates the language header; blank and comment-only lines
// never produce an instruction. Returns nil, nil when the source is
// exhausted. After a failure every subsequent call returns the same error.
func (p *Parser) Next() (*program.Instruction, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.finished {
		return nil, nil
	}

	if !p.started {
		p.started = true
		p.err = p.lx.ScanHeader()
		if p.err != nil {
			return nil, p.err
		}
	}

	line := p.lx.Next()
	if line == nil {
		p.finished = true
		return nil, nil
	}

	inst, e := p.parseLine(line)
	if e != nil {
		p.err = e
		return nil, e
	}
	return inst, nil
}

// Program drains the parser and returns the whole validated program.
func (p *Parser) Program() (*program.Program, error) {
	prog := program.New(p.name)
	for {
		inst, e := p.Next()
		if e != nil {
			return nil, e
		}
		if inst == nil {
			return prog, nil
		}
		prog.Append(inst)
	}
}

// Parse is a shorthand for New(src).Program().
func Parse(src *source.Source) (*program.Program, error) {
	return New(src).Program()
}

// parseLine validates one tokenized line and builds its instruction,
// assigning the next order number on success.
func (p *Parser) parseLine(line *lexer.Line) (*program.Instruction, error) {
	tokens := line.Tokens()
	opcode := tokens[0]

	sig, known := grammar.Lookup(opcode)
	if !known {
		return nil, ipp24.FormatErrorPos(line, ipp24.ErrOpcode, "unknown or malformed operation code %q", opcode)
	}

	operands := tokens[1:]
	if len(operands) != len(sig) {
		return nil, ipp24.FormatErrorPos(line, ipp24.ErrSyntax,
			"%s expects %d operands, got %d", opcode, len(sig), len(operands))
	}

	args := make([]program.Argument, len(sig))
	for i, kind := range sig {
		arg, e := parseOperand(line, kind, operands[i])
		if e != nil {
			return nil, e
		}
		args[i] = arg
	}

	p.order++
	return program.NewInstruction(p.order, opcode, args...), nil
}

// parseOperand validates one operand according to its kind.
func parseOperand(pos ipp24.SourcePos, kind grammar.Kind, token string) (program.Argument, error) {
	switch kind {
	case grammar.Var:
		return parseVar(pos, token)
	case grammar.Symb:
		return parseSymb(pos, token)
	case grammar.Label:
		return parseLabel(pos, token)
	case grammar.Type:
		return parseType(pos, token)
	}
	return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrInternal, "unhandled operand kind %d", kind)
}
