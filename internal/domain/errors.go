package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeDataUnavailable = "DATA_UNAVAILABLE"
	ErrCodeNoMatch         = "NO_MATCH"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrMissingRequiredField = NewDomainError(ErrCodeValidation, "missing required field")
	ErrInvalidMessageRole   = NewDomainError(ErrCodeValidation, "invalid message role")
	ErrDuplicateEntryID     = NewDomainError(ErrCodeValidation, "duplicate knowledge entry id")
)

// Not found errors
var (
	ErrSessionNotFound = NewDomainError(ErrCodeNotFound, "chat session not found")
	ErrEntryNotFound   = NewDomainError(ErrCodeNotFound, "knowledge entry not found")
)

// Chat engine errors. These never reach the presentation layer as raw
// errors: the router recovers each one into a user-visible reply.
var (
	ErrRepoDataUnavailable = NewDomainError(ErrCodeDataUnavailable, "repository data unavailable")
	ErrNoMatch             = NewDomainError(ErrCodeNoMatch, "no matching knowledge entry")
	ErrAmbiguousRepoName   = NewDomainError(ErrCodeNoMatch, "no repository matches the requested name")
)
