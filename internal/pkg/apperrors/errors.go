package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Request errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrMalformedRequest  = errors.New("malformed request")
	ErrMethodNotAllowed  = errors.New("method not allowed")
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// Storage errors. Persistence covers writes, Query covers reads.
	ErrPersistence = errors.New("persistence error")
	ErrQuery       = errors.New("query error")
)

// Entity errors
var (
	ErrStudentNotFound    = NewResourceNotFoundError("Student not found.")
	ErrSponsorNotFound    = NewResourceNotFoundError("Sponsor not found.")
	ErrProgramNotFound    = NewResourceNotFoundError("Scholarship program not found.")
	ErrAllocationNotFound = NewResourceNotFoundError("Sponsorship allocation not found.")
	ErrPaymentNotFound    = NewResourceNotFoundError("Payment not found.")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewMalformedRequestError wraps a body decoding failure
func NewMalformedRequestError(message string) error {
	return &CustomError{
		Err:     ErrMalformedRequest,
		Message: message,
	}
}

// NewInvalidQueryParamError reports a query-string value that could not be parsed
func NewInvalidQueryParamError(message string) error {
	return &CustomError{
		Err:     ErrInvalidQueryParam,
		Message: message,
	}
}

// NewPersistenceError wraps a storage failure on a mutating operation.
// The raw driver message is kept as the client-facing message.
func NewPersistenceError(err error) error {
	return &CustomError{
		Err:     ErrPersistence,
		Message: rootMessage(err),
		Cause:   err,
	}
}

// NewQueryError wraps a storage failure on a read operation
func NewQueryError(err error) error {
	return &CustomError{
		Err:     ErrQuery,
		Message: rootMessage(err),
		Cause:   err,
	}
}

func rootMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the category sentinel and the underlying cause
func (e *CustomError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
