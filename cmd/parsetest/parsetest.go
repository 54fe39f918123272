/*
Parsetest is a console utility running exit-code regression tests against a
built parser binary. Cases are enumerated in a configuration file (test.json
by default): each one names fixture files or inline source texts, the
expected exit code, and whether the captured streams should be shown. Every
check prints a colored PASSED/FAILED line; the run ends with a pass count
summary.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Michal418/ipp24/tester"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "parsetest",
		Short:         "exit-code regression driver for the IPPcode24 parser",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, e := tester.Load(configPath)
			if e != nil {
				return e
			}
			runner := &tester.ExecRunner{App: config.App}
			return tester.New(config, runner, cmd.OutOrStdout()).Run()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "test.json", "test configuration file")

	if e := cmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(1)
	}
}
