package errors

import (
	"fmt"
	"net/http"
)

// Workflow and credential-specific error types
const (
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeAuthorization     ErrorType = "authorization_error"
	ErrorTypeEncoding          ErrorType = "encoding_error"
	ErrorTypeDecoding          ErrorType = "decoding_error"
	ErrorTypeRender            ErrorType = "render_error"
)

// NewInvalidTransitionError creates an error for a status precondition violation.
// This is also returned when a concurrent transition won the race and the stored
// status no longer matches what the caller observed; callers may re-fetch and
// retry once.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: message,
		Code:    http.StatusConflict,
		Details: detail,
	}
}

// NewAuthorizationError creates an error for an actor lacking rights for a transition
func NewAuthorizationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeAuthorization,
		Message: message,
		Code:    http.StatusForbidden,
		Details: detail,
	}
}

// NewEncodingError creates an error for a credential payload exceeding its byte budget
func NewEncodingError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeEncoding,
		Message: message,
		Code:    http.StatusUnprocessableEntity,
		Details: detail,
	}
}

// NewDecodingError creates an error for a malformed stored credential payload
func NewDecodingError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeDecoding,
		Message: message,
		Code:    http.StatusUnprocessableEntity,
		Details: detail,
	}
}

// NewRenderError creates an error for artifact generation that failed after retries
func NewRenderError(message string, err error) *AppError {
	detail := ""
	if err != nil {
		detail = fmt.Sprintf("last attempt: %v", err)
	}
	return &AppError{
		Type:    ErrorTypeRender,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: detail,
	}
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidTransition
}

// IsAuthorizationError checks if the error is an authorization error
func IsAuthorizationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeAuthorization
}

// IsEncodingError checks if the error is an encoding error
func IsEncodingError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeEncoding
}

// IsDecodingError checks if the error is a decoding error
func IsDecodingError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeDecoding
}

// IsRenderError checks if the error is a render error
func IsRenderError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeRender
}
