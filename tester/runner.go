package tester

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs the program under test as a subprocess.
type ExecRunner struct {
	App string
}

// Run feeds stdin to one subprocess invocation and returns its exit code.
// Hidden streams are discarded, shown ones go to the console.
// A failure to start the program at all is an error, a non-zero exit code
// is not.
func (r *ExecRunner) Run(stdin io.Reader, showStdout, showStderr bool) (int, error) {
	cmd := exec.Command(r.App)
	cmd.Stdin = stdin
	if showStdout {
		cmd.Stdout = os.Stdout
	}
	if showStderr {
		cmd.Stderr = os.Stderr
	}

	e := cmd.Run()
	if e == nil {
		return 0, nil
	}
	var exit *exec.ExitError
	if errors.As(e, &exit) {
		return exit.ExitCode(), nil
	}
	return 0, e
}
