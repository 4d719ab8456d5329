package errors

import (
	"errors"
	"sync"
)

// FileError ties an error to the input file that produced it.
type FileError struct {
	File string
	Err  error
}

// Error implements the error interface
func (fe *FileError) Error() string {
	return fe.File + ": " + fe.Err.Error()
}

// Unwrap returns the underlying error
func (fe *FileError) Unwrap() error {
	return fe.Err
}

// ErrorCollector collects per-file errors of a multi-file run
type ErrorCollector struct {
	errors []FileError
	mutex  sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		errors: make([]FileError, 0),
	}
}

// Add records an error for a file. Nil errors are ignored.
func (ec *ErrorCollector) Add(file string, err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, FileError{File: file, Err: err})
}

// GetErrors returns all collected errors
func (ec *ErrorCollector) GetErrors() []FileError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	// Return a copy to avoid race conditions
	result := make([]FileError, len(ec.errors))
	copy(result, ec.errors)
	return result
}

// GetErrorsByFile returns errors for a specific file
func (ec *ErrorCollector) GetErrorsByFile(file string) []FileError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	var fileErrors []FileError
	for _, err := range ec.errors {
		if err.File == file {
			fileErrors = append(fileErrors, err)
		}
	}
	return fileErrors
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.errors) > 0
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = ec.errors[:0]
}

// Err joins the collected errors into one, or returns nil.
func (ec *ErrorCollector) Err() error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	if len(ec.errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(ec.errors))
	for i := range ec.errors {
		errs = append(errs, &ec.errors[i])
	}
	return errors.Join(errs...)
}
