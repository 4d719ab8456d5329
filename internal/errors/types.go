// Package errors provides the structured error type used across axname.
//
// The accessibility computation itself never fails; errors only come from
// reading and parsing input, compiling XPath expressions and loading
// configuration.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeIO       ErrorType = "io"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeInternal ErrorType = "internal"
)

// AxError is a structured error type with context.
type AxError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	FilePath    string
	Recoverable bool
}

// Error implements the error interface.
func (e *AxError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *AxError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *AxError) Is(target error) bool {
	var t *AxError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *AxError) WithContext(key string, value interface{}) *AxError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithFile records the input file the error relates to.
func (e *AxError) WithFile(filePath string) *AxError {
	e.FilePath = filePath

	return e
}

// NewInputError creates an error for unusable input such as malformed HTML
// or an invalid XPath expression.
func NewInputError(code, message string) *AxError {
	return &AxError{
		Type:        ErrorTypeInput,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *AxError {
	return &AxError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *AxError {
	return &AxError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// IsRecoverable reports whether processing can continue with other inputs.
func IsRecoverable(err error) bool {
	var ae *AxError
	if errors.As(err, &ae) {
		return ae.Recoverable
	}

	return false
}

// IsInputError reports whether err was caused by unusable input.
func IsInputError(err error) bool {
	var ae *AxError
	if errors.As(err, &ae) {
		return ae.Type == ErrorTypeInput
	}

	return false
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// Handle logs err at a level matching its type: recoverable input errors
// are warnings, everything else is an error.
func Handle(ctx context.Context, logger Logger, err error) {
	if err == nil || logger == nil {
		return
	}

	var ae *AxError
	if !errors.As(err, &ae) {
		logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	if ae.Recoverable {
		logger.Warn(ctx, ae, "Skipping unusable input",
			"type", ae.Type,
			"code", ae.Code,
			"file", ae.FilePath)
		return
	}

	logger.Error(ctx, ae, "Error occurred",
		"type", ae.Type,
		"code", ae.Code,
		"file", ae.FilePath)
}

// Common error codes.
const (
	ErrCodeParseHTML     = "ERR_PARSE_HTML"
	ErrCodeInvalidXPath  = "ERR_INVALID_XPATH"
	ErrCodeInvalidRole   = "ERR_INVALID_ROLE"
	ErrCodeReadInput     = "ERR_READ_INPUT"
	ErrCodeFileNotFound  = "ERR_FILE_NOT_FOUND"
	ErrCodeConfigInvalid = "ERR_CONFIG_INVALID"
	ErrCodeNoMatch       = "ERR_NO_MATCH"
	ErrCodeInternalError = "ERR_INTERNAL"
)
