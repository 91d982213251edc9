// Package errors provides structured error types and exit codes for doccmp.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error, or differences found with --strict
	ExitConfigError  = 2 // Configuration or usage error (bad rules file, missing flags)
	ExitInputError   = 3 // Input error (document unreadable or unparsable)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindInput
	KindDifference
)

// DoccmpError is the base error type for doccmp.
type DoccmpError struct {
	Kind    ErrorKind
	Message string
	Path    string // File the error relates to, if any
	Cause   error  // Underlying error
}

func (e *DoccmpError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *DoccmpError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *DoccmpError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindInput:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *DoccmpError {
	return &DoccmpError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *DoccmpError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *DoccmpError {
	return &DoccmpError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *DoccmpError {
	return Config(fmt.Sprintf(format, args...))
}

// Input creates an error for a document that could not be read or parsed.
func Input(path string, cause error) *DoccmpError {
	return &DoccmpError{
		Kind:    KindInput,
		Message: "cannot load document",
		Path:    path,
		Cause:   cause,
	}
}

// Validation creates an error for a rules file that failed validation.
func Validation(path string, cause error) *DoccmpError {
	return &DoccmpError{
		Kind:    KindValidation,
		Message: "invalid rules file",
		Path:    path,
		Cause:   cause,
	}
}

// Differences reports that the compared documents are not equal.
func Differences(mismatch, missing int) *DoccmpError {
	return &DoccmpError{
		Kind:    KindDifference,
		Message: fmt.Sprintf("documents differ: %d mismatch, %d missing", mismatch, missing),
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *DoccmpError {
	return &DoccmpError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error. Wrapped DoccmpErrors are
// found through the chain.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var de *DoccmpError
	if errors.As(err, &de) {
		return de.ExitCode()
	}
	return ExitRuntimeError
}

// IsDifference reports whether err only signals that documents differ.
func IsDifference(err error) bool {
	var de *DoccmpError
	return errors.As(err, &de) && de.Kind == KindDifference
}
