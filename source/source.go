// Package source defines source text used by lexer.
package source

import (
	"io"
	"os"
	"strings"

	"github.com/Michal418/ipp24"
)

// Source is a named piece of UTF-8 text split into lines.
// It is immutable once constructed.
type Source struct {
	name  string
	lines []string
}

// New creates new Source.
// Line terminators ("\n", "\r\n") are stripped; a trailing terminator does
// not produce an extra empty line.
func New(name string, content []byte) *Source {
	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Source{name: name, lines: lines}
}

// Read creates new Source from the whole content of r.
// Returns *ipp24.Error with ErrInput code on read failure.
func Read(name string, r io.Reader) (*Source, error) {
	content, e := io.ReadAll(r)
	if e != nil {
		return nil, ipp24.FormatError(ipp24.ErrInput, "cannot read %s: %s", name, e.Error())
	}
	return New(name, content), nil
}

// ReadFile creates new Source from the content of the named file.
// Returns *ipp24.Error with ErrInput code on read failure.
func ReadFile(name string) (*Source, error) {
	content, e := os.ReadFile(name)
	if e != nil {
		return nil, ipp24.FormatError(ipp24.ErrInput, "cannot read %s: %s", name, e.Error())
	}
	return New(name, content), nil
}

// Name returns source name, e.g. a file name or "stdin".
func (s *Source) Name() string {
	return s.name
}

// LineCount returns the number of lines.
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Line returns the text of the n-th (1-based) line without the terminator.
// Returns empty string if n is out of range.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// Lines returns all lines in order. The result must not be modified.
func (s *Source) Lines() []string {
	return s.lines
}
