package lexer

import (
	"reflect"
	"testing"

	"github.com/Michal418/ipp24"
	"github.com/Michal418/ipp24/source"
)

func TestStripComment(t *testing.T) {
	samples := map[string]string{
		"":                     "",
		"MOVE GF@x int@5":      "MOVE GF@x int@5",
		"# whole line":         "",
		"BREAK # trailing":     "BREAK ",
		"WRITE string@a#b":     "WRITE string@a",
		"WRITE string@a\\035b": "WRITE string@a\\035b",
		"## double":            "",
	}

	for text, expected := range samples {
		if got := StripComment(text); got != expected {
			t.Errorf("sample %q: expected %q, got %q", text, expected, got)
		}
	}
}

func TestTokenize(t *testing.T) {
	samples := []struct {
		text   string
		tokens []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"# comment only", nil},
		{"BREAK", []string{"BREAK"}},
		{"move GF@x int@5", []string{"MOVE", "GF@x", "int@5"}},
		{"  DefVar\tGF@Case  # set up", []string{"DEFVAR", "GF@Case"}},
		{"WRITE GF@x # int@5", []string{"WRITE", "GF@x"}},
	}

	for _, sample := range samples {
		got := Tokenize(sample.text)
		if !reflect.DeepEqual(got, sample.tokens) {
			t.Errorf("sample %q: expected %v, got %v", sample.text, sample.tokens, got)
		}
	}
}

func TestTokenizeKeepsOperandCase(t *testing.T) {
	tokens := Tokenize("read gf@X InT")
	expected := []string{"READ", "gf@X", "InT"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, got %v", expected, tokens)
	}
}

func scanHeader(text string) (*Lexer, error) {
	l := New(source.New("sample", []byte(text)))
	return l, l.ScanHeader()
}

func TestScanHeader(t *testing.T) {
	samples := []string{
		".IPPcode24\n",
		".IPPcode24",
		"  .IPPcode24  \n",
		"\t.IPPcode24 # header\n",
		"\n\n.IPPcode24\n",
		"# intro\n   # more\n\n.IPPcode24\n",
	}

	for _, text := range samples {
		_, e := scanHeader(text)
		if e != nil {
			t.Errorf("sample %q: unexpected error: %s", text, e)
		}
	}
}

func TestScanHeaderErrors(t *testing.T) {
	samples := []string{
		"",
		"\n\n# only comments\n",
		".ippCODE24\n",
		".IPPcode23\n",
		"MOVE GF@x int@5\n.IPPcode24\n",
		"x .IPPcode24\n",
		".IPPcode24 x\n",
	}

	for _, text := range samples {
		_, e := scanHeader(text)
		ee, is := e.(*ipp24.Error)
		if !is || ee.Code != ipp24.ErrHeader {
			t.Errorf("sample %q: expected error code %d, got %v", text, ipp24.ErrHeader, e)
		}
	}
}

func TestNext(t *testing.T) {
	text := "# demo\n.IPPcode24\n\nDEFVAR GF@x # new var\n   # noise\nMOVE GF@x int@5\n"
	l, e := scanHeader(text)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	expected := []struct {
		num    int
		tokens []string
	}{
		{4, []string{"DEFVAR", "GF@x"}},
		{6, []string{"MOVE", "GF@x", "int@5"}},
	}

	for _, exp := range expected {
		line := l.Next()
		if line == nil {
			t.Fatalf("expected line %d, got end of source", exp.num)
		}
		if line.LineNumber() != exp.num || !reflect.DeepEqual(line.Tokens(), exp.tokens) {
			t.Fatalf("expected line %d %v, got line %d %v", exp.num, exp.tokens, line.LineNumber(), line.Tokens())
		}
		if line.SourceName() != "sample" {
			t.Fatalf("expected source name %q, got %q", "sample", line.SourceName())
		}
	}

	if line := l.Next(); line != nil {
		t.Fatalf("expected end of source, got line %d", line.LineNumber())
	}
}

func TestHeaderErrorPosition(t *testing.T) {
	_, e := scanHeader("\n# x\nFOO\n.IPPcode24\n")
	ee, is := e.(*ipp24.Error)
	if !is {
		t.Fatalf("expected *ipp24.Error, got %v", e)
	}
	if ee.Line != 3 || ee.SourceName != "sample" {
		t.Fatalf("expected error at sample line 3, got %q line %d", ee.SourceName, ee.Line)
	}
}
