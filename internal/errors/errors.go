// Package errors provides error classification for the initial field tooling.
//
// Two classes matter here. Invalid errors come from bad input (missing files, empty
// arguments, malformed content) and stop only the current operation. Fatal errors mean a
// model reached a state the writer was never designed to serialize; they are programming
// contract violations and are never recovered from.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or arguments
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents unrecoverable contract violations
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrFileNotFound         = errors.New("file not found")
	ErrParsingFailed        = errors.New("parsing failed")
	ErrUnsupportedOperation = errors.New("spatial operation not supported")
	ErrUnsupportedValue     = errors.New("value not supported")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrParsingFailed)
}

// IsFatal checks if an error is a contract violation that must stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}
	return errors.Is(err, ErrUnsupportedOperation) || errors.Is(err, ErrUnsupportedValue)
}

// Wrap adds component, method and action context to an error
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error and classifies it as invalid input
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrapped, component, method, wrapped.Error())
}

// WrapFatal wraps an error and classifies it as fatal
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrapped, component, method, wrapped.Error())
}

// InvalidArgument reports a missing or empty required argument
func InvalidArgument(component, method, argument string) error {
	err := fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, argument)
	return newClassified(ErrorInvalid, err, component, method, fmt.Sprintf("%s.%s: %s", component, method, err))
}

// Unsupported reports a value outside the set a conversion was designed for
func Unsupported(component, method string, value any) error {
	err := fmt.Errorf("%w: %v", ErrUnsupportedValue, value)
	return newClassified(ErrorFatal, err, component, method, fmt.Sprintf("%s.%s: %s", component, method, err))
}

// Is reports whether any error in err's tree matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}
