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
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"

	// Upload / quiz specific errors
	CodeUploadNotFound ErrorCode = "UPLOAD_NOT_FOUND"
	CodeQuizNotFound   ErrorCode = "QUIZ_NOT_FOUND"

	// External collaborator errors
	CodeExtractionFailed  ErrorCode = "EXTRACTION_FAILED"
	CodeLLMServiceError   ErrorCode = "LLM_SERVICE_ERROR"
	CodeInvalidAIResponse ErrorCode = "INVALID_AI_RESPONSE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

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

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUploadNotFoundError(uploadID string) *DomainError {
	return NewError(CodeUploadNotFound, "Upload not found", fmt.Errorf("upload id %q", uploadID))
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, "Quiz not found", fmt.Errorf("quiz id %q", quizID))
}

func NewExtractionFailedError(cause error) *DomainError {
	return NewError(CodeExtractionFailed, "Failed to parse PDF file. Please ensure the PDF contains readable text and is not corrupted.", cause)
}

func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, "Quiz generation failed. Please try again.", cause)
}

func NewInvalidAIResponseError(cause error) *DomainError {
	return NewError(CodeInvalidAIResponse, "Quiz generation failed. Please try again.", cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates field errors for one request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%s has invalid format: %s", field, value)}
}

func NewOutOfRangeError(field string, value, min, max int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value)}
}
