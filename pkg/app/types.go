package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/deploymenttheory/go-initfield/internal/errors"
)

// FileTarget selects an initial field file and the model file it belongs to
type FileTarget struct {
	FilePath string

	// ParentFilePath is the model file; data files live next to it.
	// Empty means the initial field file itself.
	ParentFilePath string
}

// Validate ensures the file target is usable
func (ft *FileTarget) Validate() error {
	if strings.TrimSpace(ft.FilePath) == "" {
		return fmt.Errorf("initial field file path is required")
	}
	if ext := strings.ToLower(filepath.Ext(ft.FilePath)); ext != ".ini" {
		return fmt.Errorf("initial field file must have the .ini extension, got %q", ext)
	}
	return nil
}

// Parent returns the parent file path, defaulting to the initial field file
func (ft *FileTarget) Parent() string {
	if ft.ParentFilePath != "" {
		return ft.ParentFilePath
	}
	return ft.FilePath
}

// String returns a string representation of the file target
func (ft *FileTarget) String() string {
	if ft.ParentFilePath == "" {
		return ft.FilePath
	}
	return fmt.Sprintf("%s (model: %s)", ft.FilePath, ft.ParentFilePath)
}

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFileNotFound = "FILE_NOT_FOUND"
	ErrCodeParseFailure = "PARSE_FAILURE"
	ErrCodeUnsupported  = "UNSUPPORTED"
	ErrCodeWriteFailure = "WRITE_FAILURE"
	ErrCodeTimeout      = "TIMEOUT"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ClassifyError maps a service error onto a CommonError carrying the matching code
func ClassifyError(message string, err error) *CommonError {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce
	}

	code := ErrCodeWriteFailure
	switch {
	case errors.Is(err, errors.ErrFileNotFound):
		code = ErrCodeFileNotFound
	case errors.Is(err, errors.ErrParsingFailed):
		code = ErrCodeParseFailure
	case errors.Is(err, errors.ErrInvalidArgument):
		code = ErrCodeInvalidInput
	case errors.IsFatal(err):
		code = ErrCodeUnsupported
	case errors.Is(err, context.DeadlineExceeded):
		code = ErrCodeTimeout
	}
	return NewError(code, message, err)
}
