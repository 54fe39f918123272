// Package lexer defines lexical analysis of IPPcode24 source: header
// detection and line tokenization.
//
// Tokenization itself cannot fail: a comment always starts at the first '#'
// (there is no escape for the comment marker, not even inside string
// literals), the rest of the line is split on whitespace runs, and the first
// token is upper-cased because operation codes are case-insensitive. Whether
// the resulting tokens form a valid instruction is decided by parser.
package lexer

import (
	"strings"

	"github.com/Michal418/ipp24"
	"github.com/Michal418/ipp24/source"
)

// Header is the mandatory language header token, case-sensitive.
const Header = ".IPPcode24"

// Line is one tokenized source line that produced at least one token.
type Line struct {
	src    *source.Source
	num    int
	tokens []string
}

// Tokens returns the tokens of the line. The first one is upper-cased.
// The result must not be modified.
func (l *Line) Tokens() []string {
	return l.tokens
}

// SourceName returns the name of the source this line belongs to.
func (l *Line) SourceName() string {
	if l.src == nil {
		return ""
	}
	return l.src.Name()
}

// LineNumber returns 1-based line number in the source.
func (l *Line) LineNumber() int {
	return l.num
}

// StripComment removes everything from the first '#' to the end of line.
func StripComment(text string) string {
	idx := strings.IndexByte(text, '#')
	if idx < 0 {
		return text
	}
	return text[:idx]
}

// Tokenize strips the comment and splits the line on whitespace runs.
// Returns nil for blank and comment-only lines.
// If any tokens are produced, the first one is upper-cased.
func Tokenize(text string) []string {
	tokens := strings.Fields(StripComment(text))
	if len(tokens) == 0 {
		return nil
	}
	tokens[0] = strings.ToUpper(tokens[0])
	return tokens
}

// Lexer scans one source exactly once: first the header, then tokenized
// lines in source order. It is not restartable.
type Lexer struct {
	src  *source.Source
	next int
}

// New creates new Lexer for src.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src, next: 1}
}

// ScanHeader locates the language header among the leading lines.
// Blank and comment-only lines before the header are skipped; the header
// itself may be surrounded by inline whitespace and followed by a comment.
// Returns *ipp24.Error with ErrHeader code if any other content precedes the
// header or no header is present. Must be called before Next.
func (l *Lexer) ScanHeader() error {
	for ; l.next <= l.src.LineCount(); l.next++ {
		text := strings.TrimSpace(StripComment(l.src.Line(l.next)))
		if text == "" {
			continue
		}
		if text == Header {
			l.next++
			return nil
		}
		pos := &Line{src: l.src, num: l.next}
		return ipp24.FormatErrorPos(pos, ipp24.ErrHeader, "missing or malformed %s header", Header)
	}
	return ipp24.FormatError(ipp24.ErrHeader, "missing %s header in %s", Header, l.src.Name())
}

// Next returns the next line that produced at least one token, skipping
// blank and comment-only lines. Returns nil when the source is exhausted.
func (l *Lexer) Next() *Line {
	for ; l.next <= l.src.LineCount(); l.next++ {
		tokens := Tokenize(l.src.Line(l.next))
		if len(tokens) == 0 {
			continue
		}
		line := &Line{src: l.src, num: l.next, tokens: tokens}
		l.next++
		return line
	}
	return nil
}
