// Package xmlgen renders a validated program as its canonical XML document:
// a program root element with the language attribute, one instruction child
// per instruction in order, one argN child per argument. Element and
// attribute order is deterministic and the document is indented with two
// spaces per level.
//
// Argument text is stored with its \ddd escapes encoded and is written out
// unchanged; only XML character escaping (&, <, >) is applied, so parsing
// the document yields exactly the stored text.
package xmlgen

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/Michal418/ipp24"
	"github.com/Michal418/ipp24/program"
)

type argElem struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

type instructionElem struct {
	XMLName xml.Name `xml:"instruction"`
	Order   int      `xml:"order,attr"`
	Opcode  string   `xml:"opcode,attr"`
	Args    []argElem
}

type programElem struct {
	XMLName      xml.Name `xml:"program"`
	Language     string   `xml:"language,attr"`
	Instructions []instructionElem
}

// Marshal renders p as a complete XML document, including the XML
// declaration and a trailing newline.
func Marshal(p *program.Program) ([]byte, error) {
	doc := programElem{Language: program.Language}
	for _, inst := range p.Instructions() {
		elem := instructionElem{Order: inst.Order(), Opcode: inst.Opcode()}
		for i, arg := range inst.Args() {
			elem.Args = append(elem.Args, argElem{
				XMLName: xml.Name{Local: fmt.Sprintf("arg%d", i+1)},
				Type:    arg.Kind(),
				Text:    arg.Text(),
			})
		}
		doc.Instructions = append(doc.Instructions, elem)
	}

	content, e := xml.MarshalIndent(doc, "", "  ")
	if e != nil {
		return nil, ipp24.FormatError(ipp24.ErrInternal, "cannot render XML: %s", e.Error())
	}

	result := make([]byte, 0, len(xml.Header)+len(content)+1)
	result = append(result, xml.Header...)
	result = append(result, content...)
	result = append(result, '\n')
	return result, nil
}

// Write renders p and writes the whole document to w in one piece, so a
// failed run never emits a partial document.
// Returns *ipp24.Error with ErrOutput code on write failure.
func Write(w io.Writer, p *program.Program) error {
	content, e := Marshal(p)
	if e != nil {
		return e
	}
	_, e = w.Write(content)
	if e != nil {
		return ipp24.FormatError(ipp24.ErrOutput, "cannot write XML document: %s", e.Error())
	}
	return nil
}
