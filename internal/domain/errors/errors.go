// Package errors defines the application error taxonomy surfaced to the
// HTTP layer.
package errors

import (
	"fmt"
	"net/http"

	"concourse/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NotFoundError signals that the requested element genuinely does not exist,
// neither in cache nor upstream. It is recoverable by the caller and maps to
// a 404.
type NotFoundError struct {
	id          string
	elementName string
}

// NewNotFoundError creates a NotFoundError for the given element id and kind.
func NewNotFoundError(id, elementName string) *NotFoundError {
	return &NotFoundError{
		id:          id,
		elementName: elementName,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return "No result for the given " + e.elementName + " id=" + e.id
}

// HTTPCode returns the HTTP status code
func (e *NotFoundError) HTTPCode() int {
	return http.StatusNotFound
}

// ErrorCode returns the business error code
func (e *NotFoundError) ErrorCode() string {
	return "NOT_FOUND"
}

// Message returns the user-friendly error message
func (e *NotFoundError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *NotFoundError) Details() string {
	return ""
}

// WebServiceError signals that an upstream collaborator misbehaved: non-2xx
// response, unexpected redirect, malformed body, or transport failure. The
// HTTP status it carries is mirrored to the caller.
type WebServiceError struct {
	errorName      string
	webServiceName string
	httpStatusCode int
	description    string
}

// NewWebServiceError creates a WebServiceError carrying the upstream service
// name, the status to mirror and a human description.
func NewWebServiceError(errorName, webServiceName string, statusCode int, description string) *WebServiceError {
	return &WebServiceError{
		errorName:      errorName,
		webServiceName: webServiceName,
		httpStatusCode: statusCode,
		description:    description,
	}
}

// Error implements the error interface
func (e *WebServiceError) Error() string {
	return fmt.Sprintf("%s : webService=%s, statusCode=%d : %s",
		e.errorName, e.webServiceName, e.httpStatusCode, e.description)
}

// HTTPCode returns the upstream HTTP status to mirror
func (e *WebServiceError) HTTPCode() int {
	return e.httpStatusCode
}

// ErrorCode returns the business error code
func (e *WebServiceError) ErrorCode() string {
	return e.errorName
}

// Message returns the user-friendly error message
func (e *WebServiceError) Message() string {
	return e.description
}

// Details returns detailed error information
func (e *WebServiceError) Details() string {
	return "webService=" + e.webServiceName
}

// WebServiceName returns the logical name of the failing upstream service.
func (e *WebServiceError) WebServiceName() string {
	return e.webServiceName
}
