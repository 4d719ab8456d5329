package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating an AxError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *AxError {
	if err == nil {
		return nil
	}

	// If it's already an AxError, preserve its properties but update the message
	var ae *AxError
	if errors.As(err, &ae) {
		return &AxError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       ae,
			Context:     ae.Context,
			FilePath:    ae.FilePath,
			Recoverable: ae.Recoverable,
		}
	}

	return &AxError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeInput,
	}
}

// WrapInput wraps an error caused by unusable input
func WrapInput(err error, code, message string) *AxError {
	return Wrap(err, ErrorTypeInput, code, message)
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *AxError {
	axErr := Wrap(err, ErrorTypeIO, code, message)
	if axErr != nil {
		axErr.Recoverable = false
	}
	return axErr
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *AxError {
	axErr := Wrap(err, ErrorTypeConfig, code, message)
	if axErr != nil {
		axErr.Recoverable = false
	}
	return axErr
}
