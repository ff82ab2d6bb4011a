package cmdutil

import (
	"errors"
	"fmt"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/safety"
	"github.com/sendcast/sendcast-cli/internal/targets"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitError      = 1 // general/runtime error, incl. remote API failures
	ExitUsage      = 2 // invalid arguments or conflicting flags
	ExitIO         = 5 // unreadable input file
	ExitValidation = 6 // CSV/email-list validation failure
)

// ExitCodeError carries a process exit code alongside an error.
// Silent errors were already reported by the command and only need the
// exit code applied.
type ExitCodeError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

// Exit wraps err with an explicit exit code.
func Exit(code int, err error) *ExitCodeError {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitSilent wraps an already-reported failure with an exit code.
func ExitSilent(code int) *ExitCodeError {
	return &ExitCodeError{Code: code, Silent: true}
}

// Usagef builds a usage error (exit 2).
func Usagef(format string, args ...interface{}) *ExitCodeError {
	return Exit(ExitUsage, fmt.Errorf(format, args...))
}

// Silent reports whether err was already reported at its origin.
func Silent(err error) bool {
	if errors.Is(err, safety.ErrRefused) {
		return true
	}
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr) && exitErr.Silent
}

// CodeFor maps an error to its process exit code.
func CodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var fileErr *targets.FileError
	if errors.As(err, &fileErr) {
		return ExitIO
	}

	switch {
	case errors.Is(err, targets.ErrInvalidEmail),
		errors.Is(err, targets.ErrEmptyEmail),
		errors.Is(err, cliutil.ErrConflictingOutputFlags):
		return ExitUsage
	case errors.Is(err, safety.ErrRefused):
		return ExitError
	}

	return ExitError
}
