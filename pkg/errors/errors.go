package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error with HTTP awareness. Details carries
// per-field validation messages when the error is a validation failure.
type Error struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Details map[string][]string `json:"details,omitempty"`
	Err     error               `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for the failure taxonomy surfaced by the API.
var (
	ErrSheetNotConfigured = New("SHEET_NOT_CONFIGURED", http.StatusInternalServerError, "Missing GOOGLE_SHEETS_ID")
	ErrNotAuthorized      = New("NOT_AUTHORIZED", http.StatusUnauthorized, "Not authorized. Visit /api/auth/google to connect your Google account.")
	ErrSheetFetch         = New("SHEET_FETCH_FAILED", http.StatusInternalServerError, "Failed to fetch spreadsheet data")
	ErrInvalidJSON        = New("INVALID_JSON", http.StatusBadRequest, "Invalid JSON body")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "Invalid request body")
	ErrPDFGeneration      = New("PDF_GENERATION_FAILED", http.StatusInternalServerError, "Failed to generate PDF")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithDetails returns a copy of the error carrying field-level messages.
func WithDetails(err *Error, details map[string][]string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.Details = details
	return &clone
}
