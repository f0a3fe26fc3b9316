package indent

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - all error messages must be constants (NO MAGIC STRINGS)
const (
	// Precondition violations
	ErrMsgNilDelegate    = "delegate writer is required"
	ErrMsgNilIndentation = "indentation is required"

	// Invalid arguments
	ErrMsgNegativeLevel = "indentation level may not be negative"

	// Bounds violations
	ErrMsgIndexOutOfRange = "character index out of range"
	ErrMsgInvalidRange    = "substring range out of bounds"

	// I/O and decoding
	ErrMsgCloseFailed  = "could not close delegate"
	ErrMsgDecodeFailed = "indentation decoding failed"
)

// Error code constants for categorization
const (
	ErrCodeValidation = "INDENT_VALIDATION"
	ErrCodeBounds     = "INDENT_BOUNDS"
	ErrCodeIO         = "INDENT_IO"
	ErrCodeDecode     = "INDENT_DECODE"
)

// NewNilDelegateError creates a precondition error for a missing delegate
func NewNilDelegateError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgNilDelegate)
}

// NewNilIndentationError creates a precondition error for a missing indentation
func NewNilIndentationError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgNilIndentation)
}

// NewNegativeLevelError creates an invalid-argument error carrying the offending level
func NewNegativeLevelError(level int) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgNegativeLevel).
		WithMetadata(MetaKeyLevel, strconv.Itoa(level))
}

// NewIndexOutOfRangeError creates a bounds error for a character index
func NewIndexOutOfRangeError(index, length int) error {
	return cuserr.NewValidationError(ErrCodeBounds, ErrMsgIndexOutOfRange).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyLength, strconv.Itoa(length))
}

// NewInvalidRangeError creates a bounds error for a substring range
func NewInvalidRangeError(start, end, length int) error {
	return cuserr.NewValidationError(ErrCodeBounds, ErrMsgInvalidRange).
		WithMetadata(MetaKeyStart, strconv.Itoa(start)).
		WithMetadata(MetaKeyEnd, strconv.Itoa(end)).
		WithMetadata(MetaKeyLength, strconv.Itoa(length))
}

// NewCloseError wraps a delegate close failure, naming the delegate type.
// The original error remains reachable through errors.Is / errors.Unwrap.
func NewCloseError(delegate string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, ErrMsgCloseFailed).
		WithMetadata(MetaKeyDelegate, delegate)
}

// NewDecodeError wraps a malformed serialized-indentation payload
func NewDecodeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDecode, ErrMsgDecodeFailed)
}
