package errors

import (
	"errors"
	"fmt"
)

// Common error types for categorization and handling

var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")

	// ErrEngineNotInitialized indicates the QA engine failed to initialize
	ErrEngineNotInitialized = errors.New("qa engine not initialized")

	// ErrUpstreamFetch indicates the remote message source could not be read
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrLLMCommunication indicates LLM communication failed
	ErrLLMCommunication = errors.New("llm communication failed")
)

// WrapError wraps an error with context message
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvalidInput checks if error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsEngineNotInitialized checks if error is an uninitialized engine error
func IsEngineNotInitialized(err error) bool {
	return errors.Is(err, ErrEngineNotInitialized)
}
