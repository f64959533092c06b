// Package errors provides typed errors for style-runner
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrDependency indicates a required external tool is missing
	ErrDependency
	// ErrExec indicates an external tool invocation failed abnormally
	ErrExec
	// ErrParse indicates malformed lint output or envelope data
	ErrParse
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrTimeout indicates a timeout occurred
	ErrTimeout
)

// CheckError is the base error type for all style-runner errors
type CheckError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// New creates a new CheckError
func New(errType ErrorType, message string, cause error) *CheckError {
	return &CheckError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *CheckError) WithContext(key string, value interface{}) *CheckError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var checkErr *CheckError
	if err == nil {
		return false
	}
	if errors.As(err, &checkErr) {
		return checkErr.Type == errType
	}
	return false
}

// IsFatal returns true if the error should abort the adapter's invocation.
// Dependency and configuration problems cannot be recovered within a run;
// per-file execution failures and parse anomalies are isolated and reported.
func IsFatal(err error) bool {
	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		return false
	}

	switch checkErr.Type {
	case ErrDependency, ErrConfig, ErrValidation:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrDependency:
		return "DEPENDENCY"
	case ErrExec:
		return "EXEC"
	case ErrParse:
		return "PARSE"
	case ErrValidation:
		return "VALIDATION"
	case ErrTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *CheckError {
	return New(ErrConfig, message, cause)
}

// DependencyError creates a missing-dependency error
func DependencyError(message string, cause error) *CheckError {
	return New(ErrDependency, message, cause)
}

// ExecError creates an external tool execution error
func ExecError(message string, cause error) *CheckError {
	return New(ErrExec, message, cause)
}

// ParseError creates a lint output parse error
func ParseError(message string, cause error) *CheckError {
	return New(ErrParse, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *CheckError {
	return New(ErrValidation, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *CheckError {
	return New(ErrTimeout, message, cause)
}
