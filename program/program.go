// Package program defines the validated in-memory representation of an
// IPPcode24 program: arguments, instructions, and their ordered sequence.
// All values are created once during parsing and never mutated afterwards.
package program

import (
	"fmt"
	"strconv"
	"strings"
)

// Language is the language name carried by the root XML element.
const Language = "IPPcode24"

// Argument kind tags, also used as the type attribute in XML output:
const (
	VarKind    = "variable"
	IntKind    = "int"
	BoolKind   = "bool"
	StringKind = "string"
	NilKind    = "nil"
	LabelKind  = "label"
	TypeKind   = "type"
)

// MaxArgs is the largest operand count any instruction may have.
const MaxArgs = 3

// Argument is one validated operand: a kind tag and the literal text exactly
// as it appears in output. Text of string literals and labels keeps its
// \ddd escapes encoded; decoding happens only in human-readable rendering.
type Argument struct {
	kind, text string
}

// NewArgument creates new Argument.
func NewArgument(kind, text string) Argument {
	return Argument{kind, text}
}

// Kind returns the kind tag of the argument.
func (a Argument) Kind() string {
	return a.kind
}

// Text returns the literal text of the argument, escapes kept encoded.
func (a Argument) Text() string {
	return a.text
}

// Decoded returns the literal text with \ddd escapes decoded to single
// characters. A backslash not followed by three digits is kept verbatim;
// validated arguments never contain one.
func (a Argument) Decoded() string {
	text := a.text
	if !strings.ContainsRune(text, '\\') {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '\\' || i+3 >= len(text) {
			b.WriteByte(text[i])
			continue
		}
		code, e := strconv.Atoi(text[i+1 : i+4])
		if e != nil {
			b.WriteByte(text[i])
			continue
		}
		b.WriteRune(rune(code))
		i += 3
	}
	return b.String()
}

// String returns the decoded human-readable form, e.g. "string@ab cd".
func (a Argument) String() string {
	return a.kind + "@" + a.Decoded()
}

// Instruction is one decoded source line: a 1-based order number, an
// upper-cased operation code, and 0 to MaxArgs arguments.
type Instruction struct {
	order  int
	opcode string
	args   []Argument
}

// NewInstruction creates new Instruction.
// Panics if more than MaxArgs arguments are given; the parser dispatch table
// never produces such an instruction.
func NewInstruction(order int, opcode string, args ...Argument) *Instruction {
	if len(args) > MaxArgs {
		panic(fmt.Sprintf("instruction %s with %d arguments", opcode, len(args)))
	}
	return &Instruction{order, opcode, args}
}

// Order returns the 1-based position of the instruction in the program.
func (i *Instruction) Order() int {
	return i.order
}

// Opcode returns the upper-cased operation code.
func (i *Instruction) Opcode() string {
	return i.opcode
}

// Args returns the arguments in declaration order.
// The result must not be modified.
func (i *Instruction) Args() []Argument {
	return i.args
}

// String returns a one-line human-readable form of the instruction.
func (i *Instruction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d: %s", i.order, i.opcode)
	for _, arg := range i.args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	return b.String()
}

// Program is the ordered instruction sequence produced from one source.
type Program struct {
	name         string
	instructions []*Instruction
}

// New creates new empty Program for the named source.
func New(name string) *Program {
	return &Program{name: name}
}

// Append adds an instruction to the end of the sequence.
func (p *Program) Append(i *Instruction) {
	p.instructions = append(p.instructions, i)
}

// SourceName returns the name of the source the program was parsed from.
func (p *Program) SourceName() string {
	return p.name
}

// Instructions returns all instructions in order.
// The result must not be modified.
func (p *Program) Instructions() []*Instruction {
	return p.instructions
}
