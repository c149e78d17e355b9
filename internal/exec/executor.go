package exec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cli/go-gh/v2"
)

// CommandExecutor defines an interface for executing external commands.
// This allows us to mock command execution in tests.
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments.
	// Returns stdout, stderr, and any error.
	Execute(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// RealExecutor executes actual system commands.
type RealExecutor struct{}

// NewRealExecutor creates an executor that runs real commands.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Execute runs the command and blocks until it exits. gh invocations go
// through go-gh so GH_PATH and the extension environment are honored.
func (e *RealExecutor) Execute(ctx context.Context, name string, args ...string) (string, string, error) {
	if name == "gh" {
		stdout, stderr, err := gh.ExecContext(ctx, args...)
		return stdout.String(), stderr.String(), err
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// CommandError reports a command that exited unsuccessfully.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += " (stderr: " + stderr + ")"
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Run executes a command and returns its stdout. A failed command is reported
// as a *CommandError.
func Run(ctx context.Context, executor CommandExecutor, name string, args ...string) (string, error) {
	stdout, stderr, err := executor.Execute(ctx, name, args...)
	if err != nil {
		return "", &CommandError{Name: name, Args: args, Stderr: stderr, Err: err}
	}
	return stdout, nil
}
