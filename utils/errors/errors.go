// Package errors provides structured error handling for the rss-reader service.
// It defines error types with codes, messages, causes and context so the
// REST layer can render any failure consistently.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND_ERROR"
	ErrCodeExternalAPI  ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout      ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED_ERROR"
	ErrCodeConflict     ErrorCode = "CONFLICT_ERROR"
	ErrCodeUnknown      ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message, cause, and context.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func newAppError(code ErrorCode, message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, Context: context}
}

func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeDatabase, message, cause, context)
}

func ValidationError(message string, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeValidation, message, nil, context)
}

func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeNotFound, message, cause, context)
}

func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeExternalAPI, message, cause, context)
}

func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeTimeout, message, cause, context)
}

func ConflictError(message string, cause error) *AppError {
	return newAppError(ErrCodeConflict, message, cause, nil)
}

func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeUnknown, message, cause, context)
}

// LogError logs an AppError with structured logging and context
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	appErr, ok := err.(*AppError)
	if !ok {
		logger.Error("unknown error occurred", "operation", operation, "error", err.Error())
		return
	}

	args := []interface{}{
		"operation", operation,
		"error_code", string(appErr.Code),
		"error_message", appErr.Message,
	}
	for key, value := range appErr.Context {
		args = append(args, key, value)
	}
	if appErr.Cause != nil {
		args = append(args, "cause", appErr.Cause.Error())
	}

	logger.Error("application error occurred", args...)
}
