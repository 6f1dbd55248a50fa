// internal/app/app.go
package app

import (
	"context"
	"errors"
	"io"

	"indexdist/internal/cmdutil"
	"indexdist/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitInput    = 2 // usage, settings, input data or distance errors
	ExitOutput   = 3 // writing results or rendering the figure
	ExitCanceled = 130
)

// exitError attaches an exit code to err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// usageError marks command-line mistakes; the usage block is printed after them.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// RunContext parses argv, runs one comparison and returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	}

	cmdutil.Errorf(stderr, "%v", err)
	var ue *usageError
	if errors.As(err, &ue) {
		_, _ = io.WriteString(stderr, "\n"+root.UsageString())
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitInput
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
