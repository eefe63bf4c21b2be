// Package execx runs external tools with inherited standard streams.
package execx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Justinkarso/create-revite/internal/debug"
)

// Runner invokes an external executable in a working directory and blocks
// until it exits. Implementations must return a *CommandError when the
// process exits nonzero.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// CommandError reports a child process that exited nonzero.
type CommandError struct {
	// Command is the full command line that failed.
	Command string
	// ExitCode is the process exit status.
	ExitCode int
	// Err is the underlying exec error.
	Err error
}

// Error returns the error message.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands via os/exec, forwarding the parent's standard
// streams so the child's own output and progress render live.
type ExecRunner struct{}

// Run spawns name with args in dir and waits for it to finish.
func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmdLine := commandLine(name, args)
	debug.DebugValue("[execx] Running", cmdLine)
	debug.DebugValue("[execx] Working directory", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Command:  cmdLine,
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}

	// Spawn failure: executable not found, permission denied, bad dir.
	return fmt.Errorf("failed to run %q: %w", cmdLine, err)
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
