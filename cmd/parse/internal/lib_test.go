package internal

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Michal418/ipp24"
)

// run feeds input to the pipeline as stdin and returns the produced XML and
// the exit code the process would terminate with.
func run(input string) (string, int) {
	var out strings.Builder
	e := Run(strings.NewReader(input), &out, "")
	return out.String(), ipp24.Code(e)
}

var _ = Describe("Run", func() {
	It("translates a program into the canonical document", func() {
		out, code := run(".IPPcode24\nDEFVAR GF@x\nMOVE GF@x int@5\n")
		Expect(code).To(Equal(0))
		Expect(out).To(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="variable">GF@x</arg1>
  </instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="variable">GF@x</arg1>
    <arg2 type="int">5</arg2>
  </instruction>
</program>
`))
	})

	It("numbers instructions gaplessly across blank and comment lines", func() {
		out, code := run("# intro\n.IPPcode24\n\nBREAK # one\n# noise\n\nBREAK\n")
		Expect(code).To(Equal(0))
		Expect(out).To(ContainSubstring(`<instruction order="1" opcode="BREAK">`))
		Expect(out).To(ContainSubstring(`<instruction order="2" opcode="BREAK">`))
		Expect(out).NotTo(ContainSubstring(`order="3"`))
	})

	It("accepts an empty program", func() {
		out, code := run(".IPPcode24 # nothing to do\n")
		Expect(code).To(Equal(0))
		Expect(out).To(ContainSubstring(`<program language="IPPcode24">`))
		Expect(out).NotTo(ContainSubstring("<instruction"))
	})

	It("rejects a missing header with code 21 and emits no XML", func() {
		out, code := run("DEFVAR GF@x\n")
		Expect(code).To(Equal(21))
		Expect(out).To(BeEmpty())
	})

	It("rejects an unknown opcode with code 22", func() {
		out, code := run(".IPPcode24\nFOO\n")
		Expect(code).To(Equal(22))
		Expect(out).To(BeEmpty())
	})

	It("rejects a wrong operand count with code 23", func() {
		out, code := run(".IPPcode24\nADD GF@x int@1\n")
		Expect(code).To(Equal(23))
		Expect(out).To(BeEmpty())
	})

	It("emits nothing when an error follows valid instructions", func() {
		out, code := run(".IPPcode24\nDEFVAR GF@x\nMOVE GF@x GF@1x\n")
		Expect(code).To(Equal(23))
		Expect(out).To(BeEmpty())
	})

	It("reads from a file when a name is given", func() {
		name := filepath.Join(GinkgoT().TempDir(), "program.src")
		Expect(os.WriteFile(name, []byte(".IPPcode24\nBREAK\n"), 0o666)).To(Succeed())

		var out strings.Builder
		Expect(Run(nil, &out, name)).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`<instruction order="1" opcode="BREAK">`))
	})

	It("reports code 11 for an unreadable file", func() {
		var out strings.Builder
		e := Run(nil, &out, filepath.Join(GinkgoT().TempDir(), "missing.src"))
		Expect(ipp24.Code(e)).To(Equal(11))
		Expect(out.String()).To(BeEmpty())
	})
})
