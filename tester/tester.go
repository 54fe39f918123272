// Package tester implements the exit-code regression driver used by
// cmd/parsetest: it runs a built parser binary as a subprocess against
// fixture files and inline source texts enumerated in a configuration file
// and compares the observed exit codes to the expected ones.
package tester

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -write_package_comment=false -package=tester -destination=mock_runner_test.go github.com/Michal418/ipp24/tester Runner

// Runner runs the program under test once with the given standard input.
// Captured streams are passed through to the console when the corresponding
// show flag is set and discarded otherwise.
type Runner interface {
	Run(stdin io.Reader, showStdout, showStderr bool) (exitCode int, e error)
}

// Result is the outcome of one check.
type Result struct {
	Description string
	Input       string // fixture file name or "*text*" for inline input
	Expected    int
	Actual      int
}

// Passed reports whether the observed exit code matched the expected one.
func (r Result) Passed() bool {
	return r.Expected == r.Actual
}

// String returns a one-line colored report of the result.
func (r Result) String() string {
	status := colored("PASSED", blue)
	if !r.Passed() {
		status = fmt.Sprintf("%s with %d", colored("FAILED", red), r.Actual)
	}
	return fmt.Sprintf("%s %s %s", r.Description, r.Input, status)
}

// Tester runs all configured cases in order and keeps pass/fail counts.
type Tester struct {
	config *Config
	runner Runner
	out    io.Writer
	passed int
	total  int
}

// New creates new Tester writing per-case report lines to out.
func New(config *Config, runner Runner, out io.Writer) *Tester {
	return &Tester{config: config, runner: runner, out: out}
}

// Run executes every configured case and writes one report line per check.
// A case that cannot be executed at all (unreadable fixture, runner failure)
// aborts the run; a wrong exit code is just a failed check.
func (t *Tester) Run() error {
	for _, c := range t.config.Cases {
		for _, file := range c.Files {
			name := filepath.Join(t.config.Dir, file)
			f, e := os.Open(name)
			if e != nil {
				return fmt.Errorf("cannot open fixture: %w", e)
			}
			code, e := t.runner.Run(f, c.ShowStdout, c.ShowStderr)
			f.Close()
			if e != nil {
				return fmt.Errorf("cannot run %s: %w", t.config.App, e)
			}
			t.record(Result{c.Description, name, c.Code, code})
		}

		for _, text := range c.Inputs {
			code, e := t.runner.Run(strings.NewReader(text), c.ShowStdout, c.ShowStderr)
			if e != nil {
				return fmt.Errorf("cannot run %s: %w", t.config.App, e)
			}
			t.record(Result{c.Description, "*text*", c.Code, code})
		}
	}

	fmt.Fprintln(t.out, t.Summary())
	return nil
}

// Passed returns the number of passed checks so far.
func (t *Tester) Passed() int {
	return t.passed
}

// Total returns the number of executed checks so far.
func (t *Tester) Total() int {
	return t.total
}

// Summary returns the colored "passed N / M" line: green when everything
// passed, magenta otherwise.
func (t *Tester) Summary() string {
	text := fmt.Sprintf("passed %d / %d", t.passed, t.total)
	if t.passed == t.total {
		return colored(text, green)
	}
	return colored(text, magenta)
}

func (t *Tester) record(r Result) {
	t.total++
	if r.Passed() {
		t.passed++
	}
	fmt.Fprintln(t.out, r.String())
}

const (
	green   = "\033[92m"
	red     = "\033[91m"
	blue    = "\033[94m"
	magenta = "\033[95m"
	reset   = "\033[0m"
)

func colored(s, color string) string {
	return color + s + reset
}
