package app

import (
	"errors"
	"fmt"
)

// Exit codes returned by the buildstamp CLI. Build pipelines check these
// symbolically rather than via magic numbers.
const (
	// ExitSuccess indicates the artifact was emitted.
	ExitSuccess = 0

	// ExitUsage indicates malformed arguments or a help request.
	ExitUsage = 2

	// ExitConfig indicates an invalid configuration: missing output
	// directory, unsupported output type, or a broken settings file.
	ExitConfig = 3

	// ExitPersistence indicates the counter file could not be read or written.
	ExitPersistence = 4

	// ExitEmission indicates the generated artifact could not be written.
	ExitEmission = 5
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Errorf builds an ExitError with a formatted message.
func Errorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ExitCode extracts the exit code from an error. Errors that are not
// ExitError map to 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
