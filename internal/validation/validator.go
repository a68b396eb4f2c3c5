package validation

import (
	"regexp"
	"strings"

	"docquiz/internal/domain"
)

const (
	MinQuestionCount = 1
	MaxQuestionCount = 20
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation request.
// A zero questionCount is allowed; the service substitutes the default.
func (v *Validator) ValidateGenerateQuizRequest(uploadID string, questionCount int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(uploadID) == "" {
		errors = append(errors, domain.NewMissingFieldError("uploadId"))
	} else if !isValidULID(uploadID) {
		errors = append(errors, domain.NewInvalidFormatError("uploadId", uploadID))
	}

	if questionCount != 0 && (questionCount < MinQuestionCount || questionCount > MaxQuestionCount) {
		errors = append(errors, domain.NewOutOfRangeError("questionCount", questionCount, MinQuestionCount, MaxQuestionCount))
	}

	return errors
}

// ValidateQuizID validates a quiz identifier path parameter.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("id", quizID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
