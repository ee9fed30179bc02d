package errors

import "fmt"

// ErrorCode represents a tagfold error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrAmbiguousAlias  ErrorCode = "AMBIGUOUS_ALIAS"  // 409
	ErrMalformedRecord ErrorCode = "MALFORMED_RECORD" // 422
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// TagfoldError represents a structured error with code, status, and details.
type TagfoldError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TagfoldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TagfoldError {
	return &TagfoldError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing file, run, or dimension.
func NewNotFound(identifier string) *TagfoldError {
	return &TagfoldError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewAmbiguousAlias creates a 409 error for an alias claimed by more than
// one synonym group in the same dimension.
func NewAmbiguousAlias(dimension, alias, first, second string) *TagfoldError {
	return &TagfoldError{
		Code:    ErrAmbiguousAlias,
		Status:  409,
		Message: fmt.Sprintf("alias %q in dimension %q belongs to both %q and %q", alias, dimension, first, second),
		Details: map[string]any{"dimension": dimension, "alias": alias, "groups": []string{first, second}},
	}
}

// NewMalformedRecord creates a 422 error for a record whose tag field is
// present but not an array of strings.
func NewMalformedRecord(index int, field string) *TagfoldError {
	return &TagfoldError{
		Code:    ErrMalformedRecord,
		Status:  422,
		Message: fmt.Sprintf("record %d: field %q is not an array of strings", index, field),
		Details: map[string]any{"index": index, "field": field},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TagfoldError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TagfoldError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TagfoldError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TagfoldError); ok {
		return tErr.Code == code
	}
	return false
}
