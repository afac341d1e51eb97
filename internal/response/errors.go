package response

import "fmt"

// Error codes used across the service layer
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// FieldError describes a validation failure on one field
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AppError is the service-layer error type that handlers translate
// into HTTP responses
type AppError struct {
	Code    string
	Message string
	Details string
	Fields  []FieldError
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with the given code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates an AppError with the validation code
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewFieldValidationError creates a validation AppError carrying
// per-field failure details
func NewFieldValidationError(message string, fields []FieldError) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Fields: fields}
}

// NewConflictError creates an AppError with the already-exists code
func NewConflictError(message, details string) *AppError {
	return NewAppError(ErrCodeAlreadyExists, message, details)
}

// NewNotFoundError creates an AppError with the not-found code
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewForbiddenError creates an AppError with the forbidden code
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}
