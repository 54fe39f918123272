// Package grammar contains the fixed IPPcode24 instruction set: the operand
// kind enumeration and the opcode signature table. It is data only, the
// dispatch logic lives in parser.
package grammar

// Kind describes one operand position of an instruction.
type Kind int

const (
	// Var accepts a frame-prefixed variable (GF@x, LF@x, TF@x).
	Var Kind = iota

	// Symb accepts either a variable or a typed literal.
	Symb

	// Label accepts a jump target name.
	Label

	// Type accepts a type name: int, string, or bool.
	Type
)

// Signature is the required operand kind sequence of an operation code.
// Arity is exact: there are no optional operands in the language.
type Signature []Kind

// The eight operand shapes of the language:
var (
	SigNone          = Signature{}
	SigLabel         = Signature{Label}
	SigVarSymb       = Signature{Var, Symb}
	SigVarSymbSymb   = Signature{Var, Symb, Symb}
	SigSymb          = Signature{Symb}
	SigVar           = Signature{Var}
	SigVarType       = Signature{Var, Type}
	SigLabelSymbSymb = Signature{Label, Symb, Symb}
)

// Opcodes maps every recognized operation code (upper-case) to its signature.
var Opcodes = map[string]Signature{
	"CREATEFRAME": SigNone,
	"PUSHFRAME":   SigNone,
	"POPFRAME":    SigNone,
	"RETURN":      SigNone,
	"BREAK":       SigNone,

	"CALL":  SigLabel,
	"LABEL": SigLabel,
	"JUMP":  SigLabel,

	"MOVE":     SigVarSymb,
	"INT2CHAR": SigVarSymb,
	"STRLEN":   SigVarSymb,
	"TYPE":     SigVarSymb,

	"ADD":      SigVarSymbSymb,
	"SUB":      SigVarSymbSymb,
	"MUL":      SigVarSymbSymb,
	"IMUL":     SigVarSymbSymb,
	"DIV":      SigVarSymbSymb,
	"IDIV":     SigVarSymbSymb,
	"LT":       SigVarSymbSymb,
	"GT":       SigVarSymbSymb,
	"EQ":       SigVarSymbSymb,
	"AND":      SigVarSymbSymb,
	"OR":       SigVarSymbSymb,
	"NOT":      SigVarSymbSymb,
	"CONCAT":   SigVarSymbSymb,
	"GETCHAR":  SigVarSymbSymb,
	"SETCHAR":  SigVarSymbSymb,
	"STRI2INT": SigVarSymbSymb,

	"PUSHS":  SigSymb,
	"WRITE":  SigSymb,
	"DPRINT": SigSymb,
	"EXIT":   SigSymb,

	"POPS":   SigVar,
	"DEFVAR": SigVar,

	"READ": SigVarType,

	"JUMPIFEQ":  SigLabelSymbSymb,
	"JUMPIFNEQ": SigLabelSymbSymb,
}

// Lookup returns the signature of opcode.
// opcode must already be upper-cased by the lexer.
func Lookup(opcode string) (Signature, bool) {
	sig, is := Opcodes[opcode]
	return sig, is
}
