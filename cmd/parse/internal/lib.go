// Package internal wires the parse pipeline together: read the whole
// source, parse it, render the XML document. It exists separately from the
// main package so the pipeline can be exercised by tests.
package internal

import (
	"io"

	"github.com/Michal418/ipp24/parser"
	"github.com/Michal418/ipp24/source"
	"github.com/Michal418/ipp24/xmlgen"
)

// Run reads IPPcode24 source from the named file, or from r under the name
// "stdin" if file is empty, and writes the XML document to w.
// The document is written only when the entire program parsed without
// error, so w never receives a partial document.
// Every failure is an *ipp24.Error carrying the process exit code.
func Run(r io.Reader, w io.Writer, file string) error {
	var src *source.Source
	var e error
	if file == "" {
		src, e = source.Read("stdin", r)
	} else {
		src, e = source.ReadFile(file)
	}
	if e != nil {
		return e
	}

	prog, e := parser.Parse(src)
	if e != nil {
		return e
	}
	return xmlgen.Write(w, prog)
}
