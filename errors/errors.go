package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a filter failure by the stage that produced it.
type ErrorType string

const (
	// ErrorTypeDecode covers unreadable, unsupported, or corrupt image bytes.
	ErrorTypeDecode ErrorType = "decode"
	// ErrorTypeDimensions covers missing or non-positive decoded dimensions.
	ErrorTypeDimensions ErrorType = "dimensions"
	// ErrorTypeResize covers failures reported by the codec resize step.
	ErrorTypeResize ErrorType = "resize"
	// ErrorTypeArtifact covers destination allocation failures.
	ErrorTypeArtifact ErrorType = "artifact"
	// ErrorTypeEncode covers failures while writing the re-encoded image.
	ErrorTypeEncode ErrorType = "encode"
	// ErrorTypeInternal covers recovered panics and other unexpected faults.
	ErrorTypeInternal ErrorType = "internal"
)

// FilterError is a structured error produced inside the resize filter.
// It never crosses the filter boundary; the filter converts every
// FilterError into its fail-open return and, at most, a log entry.
type FilterError struct {
	Type       ErrorType
	Message    string
	InnerError error
}

// Error implements the error interface.
func (e *FilterError) Error() string {
	switch {
	case e.Message != "" && e.InnerError != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.InnerError)
	case e.Message != "":
		return e.Message
	case e.InnerError != nil:
		return e.InnerError.Error()
	default:
		return string(e.Type)
	}
}

// Unwrap returns the inner error.
func (e *FilterError) Unwrap() error {
	return e.InnerError
}

// Is reports whether target is a FilterError of the same type.
func (e *FilterError) Is(target error) bool {
	if t, ok := target.(*FilterError); ok {
		return e.Type == t.Type
	}
	return false
}

// New creates a FilterError with the given type and message.
func New(errType ErrorType, message string) *FilterError {
	return &FilterError{
		Type:    errType,
		Message: message,
	}
}

// Wrap wraps err with a type and message. A nil err yields nil.
func Wrap(err error, errType ErrorType, message string) *FilterError {
	if err == nil {
		return nil
	}
	return &FilterError{
		Type:       errType,
		Message:    message,
		InnerError: err,
	}
}

// FromError converts any error to a FilterError, passing existing
// FilterErrors through unchanged.
func FromError(err error) *FilterError {
	if err == nil {
		return nil
	}
	var fe *FilterError
	if errors.As(err, &fe) {
		return fe
	}
	return &FilterError{
		Type:       ErrorTypeInternal,
		Message:    err.Error(),
		InnerError: err,
	}
}

// FromPanic converts a recovered panic value into a FilterError.
func FromPanic(v any) *FilterError {
	switch val := v.(type) {
	case error:
		return Wrap(val, ErrorTypeInternal, "panic recovered")
	case string:
		return New(ErrorTypeInternal, val)
	default:
		return New(ErrorTypeInternal, fmt.Sprintf("%v", val))
	}
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal for errors
// that did not originate in the filter.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	return FromError(err).Type
}
