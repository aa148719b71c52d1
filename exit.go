package main

import (
	"errors"
	"fmt"
)

// Exit codes for the bfi command.
const (
	ExitSuccess = 0 // program ran to completion
	ExitFailure = 1 // program failed at runtime: an unmatched loop, or an i/o failure
	ExitUsage   = 2 // bad flags, config, or program file; the program never ran
)

// ExitError carries an exit code along with an error message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprint(e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error; errors that are not an
// ExitError come from flag parsing, so are given ExitUsage.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
