package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Michal418/ipp24"
	"github.com/Michal418/ipp24/program"
)

var (
	varRe    = regexp.MustCompile(`^(LF|TF|GF)@([a-zA-Z_$&%*!?][a-zA-Z0-9_$&%*!?]*)$`)
	litRe    = regexp.MustCompile(`^(int|bool|string|nil)@(.*)$`)
	strValRe = regexp.MustCompile(`^([^ \x00-\x1f#\\]|\\[0-9]{3})*$`)
	labelRe  = regexp.MustCompile(`^([^ \x00-\x1f#\\]|\\[0-9]{3})+$`)
)

var literalPrefixes = []string{program.IntKind, program.BoolKind, program.StringKind, program.NilKind}
var framePrefixes = []string{"GF", "LF", "TF"}

// parseVar validates a frame-prefixed variable name.
func parseVar(pos ipp24.SourcePos, token string) (program.Argument, error) {
	if !varRe.MatchString(token) {
		return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrSyntax, "malformed variable %q", token)
	}
	return program.NewArgument(program.VarKind, token), nil
}

// validIntValue reports whether s is a valid integer literal value: an
// optional sign, then decimal digits, or a 0x/0X hexadecimal or 0o/0O octal
// form; the value must parse as a signed integer in the prefix-implied base.
func validIntValue(s string) bool {
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}

	var e error
	switch {
	case len(body) > 2 && (body[:2] == "0x" || body[:2] == "0X"):
		_, e = strconv.ParseUint(body[2:], 16, 64)
	case len(body) > 2 && (body[:2] == "0o" || body[:2] == "0O"):
		_, e = strconv.ParseUint(body[2:], 8, 64)
	default:
		_, e = strconv.ParseInt(s, 10, 64)
	}
	return e == nil
}

// parseLiteral validates a typed constant. The argument kind is the type
// name, the argument text is the raw value part with escapes kept encoded.
func parseLiteral(pos ipp24.SourcePos, token string) (program.Argument, error) {
	match := litRe.FindStringSubmatch(token)
	if match == nil {
		return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrSyntax, "malformed constant %q", token)
	}

	kind, value := match[1], match[2]
	valid := true
	switch kind {
	case program.IntKind:
		valid = validIntValue(value)
	case program.BoolKind:
		valid = value == "true" || value == "false"
	case program.StringKind:
		valid = strValRe.MatchString(value)
	case program.NilKind:
		valid = value == "nil"
	}
	if !valid {
		return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrSyntax, "malformed %s constant %q", kind, token)
	}

	return program.NewArgument(kind, value), nil
}

// parseLabel validates a jump target name.
func parseLabel(pos ipp24.SourcePos, token string) (program.Argument, error) {
	if !labelRe.MatchString(token) {
		return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrSyntax, "malformed label %q", token)
	}
	return program.NewArgument(program.LabelKind, token), nil
}

// parseType validates a type name operand.
func parseType(pos ipp24.SourcePos, token string) (program.Argument, error) {
	if token != program.IntKind && token != program.StringKind && token != program.BoolKind {
		return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrSyntax, "unknown type %q", token)
	}
	return program.NewArgument(program.TypeKind, token), nil
}

// parseSymb validates an operand that may be either a literal or a variable.
// The choice is made by prefix: a token starting with a literal type name is
// validated as a literal (and keeps the literal-specific error if the deeper
// grammar fails), a token starting with a frame prefix is validated as a
// variable, anything else is rejected outright.
func parseSymb(pos ipp24.SourcePos, token string) (program.Argument, error) {
	if hasAnyPrefix(token, literalPrefixes) {
		return parseLiteral(pos, token)
	}
	if hasAnyPrefix(token, framePrefixes) {
		return parseVar(pos, token)
	}
	return program.Argument{}, ipp24.FormatErrorPos(pos, ipp24.ErrSyntax, "malformed symbol %q", token)
}

func hasAnyPrefix(token string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
