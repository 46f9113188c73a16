package cmd

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 1 // bad arguments, flags or configuration
	exitProblems = 2 // at least one path was rejected or unreadable

	// exitInterrupted follows the shell convention of 128+SIGINT.
	exitInterrupted = 130
)

// exitError carries a specific exit code. A nil err means the message has
// already been printed.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error { return e.err }

// usageError is a bad invocation; it is printed with the usage hint.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}
