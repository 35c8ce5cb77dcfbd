package utils

import (
	"strings"
	"unicode/utf8"

	apperrors "member-qa/errors"
)

// MaxQuestionLength is the maximum accepted question length in runes.
const MaxQuestionLength = 500

// ValidateQuestion trims the question and checks the API's input rules.
// It returns the trimmed question, or an ErrInvalidInput wrapping the
// message to surface to the caller.
func ValidateQuestion(question string) (string, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return "", apperrors.WrapError(apperrors.ErrInvalidInput, "Question is required and cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxQuestionLength {
		return "", apperrors.WrapError(apperrors.ErrInvalidInput, "Question is too long (max 500 characters)")
	}
	return trimmed, nil
}
