/*
Parse is a console utility reading IPPcode24 source code from standard input
(or from a single file given as an argument), checking its lexical and
syntactic correctness, and writing the XML representation of the program to
standard output. The first detected problem aborts the run; the process exit
code identifies the problem class.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Michal418/ipp24"
	"github.com/Michal418/ipp24/cmd/parse/internal"
)

const about = `Parse reads IPPcode24 source code from standard input (or from the given
file), checks its lexical and syntactic correctness, and writes the XML
representation of the program to standard output.

Exit codes:
   0  success
  10  forbidden parameter combination
  11  cannot read input
  12  cannot write output
  21  missing or malformed .IPPcode24 header
  22  unknown or malformed operation code
  23  other lexical or syntactic error
  99  internal error`

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "internal error:", r)
			os.Exit(ipp24.ErrInternal)
		}
	}()

	cmd := &cobra.Command{
		Use:           "parse [file]",
		Short:         "IPPcode24 to XML parser",
		Long:          about,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return internal.Run(cmd.InOrStdin(), cmd.OutOrStdout(), file)
		},
	}

	e := cmd.Execute()
	if e == nil {
		return
	}

	fmt.Fprintln(os.Stderr, e.Error())
	if ee, is := e.(*ipp24.Error); is {
		os.Exit(ee.Code)
	}
	// anything cobra itself rejects is a forbidden parameter combination
	os.Exit(ipp24.ErrUsage)
}
