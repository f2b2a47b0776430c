package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Quiz specific errors
	CodePoolNotFound     ErrorCode = "POOL_NOT_FOUND"
	CodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	CodeInvalidPhase     ErrorCode = "INVALID_PHASE"
	CodeInvalidCount     ErrorCode = "INVALID_COUNT"
	CodeNoValidQuestions ErrorCode = "NO_VALID_QUESTIONS"
	CodeUnsupportedFile  ErrorCode = "UNSUPPORTED_FILE"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail value that is rendered in the error response.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewPoolNotFoundError(poolID string) *DomainError {
	return NewError(CodePoolNotFound, fmt.Sprintf("Question pool not found with ID: %s", poolID), nil).
		WithContext("pool_id", poolID)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Quiz session not found with ID: %s", sessionID), nil).
		WithContext("session_id", sessionID)
}

func NewInvalidPhaseError(sessionID string, phase SessionPhase, action string) *DomainError {
	return NewError(CodeInvalidPhase, fmt.Sprintf("Cannot %s while session is in phase %q", action, phase), nil).
		WithContext("session_id", sessionID).
		WithContext("phase", string(phase))
}

func NewUnsupportedFileError(fileName string) *DomainError {
	return NewError(CodeUnsupportedFile, "Please upload an Excel (.xlsx) file", nil).
		WithContext("file_name", fileName)
}

// NewInvalidCountDomainError wraps a sampler rejection so that handlers can render it.
func NewInvalidCountDomainError(err *InvalidCountError) *DomainError {
	return NewError(CodeInvalidCount, err.Error(), err).
		WithContext("requested", err.Requested).
		WithContext("available", err.Available)
}

// InvalidCountError is returned when a selection count lies outside [0, available].
type InvalidCountError struct {
	Requested int
	Available int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("cannot select %d questions: count must be between 0 and %d", e.Requested, e.Available)
}

// NoValidQuestionsError is returned by a question source that kept no rows.
type NoValidQuestionsError struct {
	RowsRead int
}

func (e *NoValidQuestionsError) Error() string {
	return fmt.Sprintf("no valid questions found in spreadsheet (%d rows read)", e.RowsRead)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field error of a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Code:    CodeMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Code:    CodeInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}
