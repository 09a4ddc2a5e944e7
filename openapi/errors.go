package openapi

import (
	"errors"
	"strings"
)

// ErrValidation is matched by every builder validation error, enabling
// errors.Is(err, openapi.ErrValidation) regardless of the concrete kind.
var ErrValidation = errors.New("validation error")

// ValidationError carries the input field that failed validation and a
// human-readable message. It is embedded by the concrete error kinds.
type ValidationError struct {
	// Field is the configuration field that was rejected (e.g., "route").
	Field string
	// Message describes the failure.
	Message string
}

func (e ValidationError) format(kind string) string {
	var sb strings.Builder
	sb.WriteString(kind)
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// RequestBodyValidationError is returned by NewRequestBody when the body
// source or its required fields are malformed.
type RequestBodyValidationError struct {
	ValidationError
}

// Error implements the error interface.
func (e *RequestBodyValidationError) Error() string {
	return e.format("request body")
}

// Is reports whether target is ErrValidation.
func (e *RequestBodyValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ResponseStatusValidationError is returned by NewResponse for an empty
// description or an out-of-range status code.
type ResponseStatusValidationError struct {
	ValidationError
}

// Error implements the error interface.
func (e *ResponseStatusValidationError) Error() string {
	return e.format("response status")
}

// Is reports whether target is ErrValidation.
func (e *ResponseStatusValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RouteValidationError is returned by NewRoute for a malformed path or an
// unsupported HTTP method.
type RouteValidationError struct {
	ValidationError
}

// Error implements the error interface.
func (e *RouteValidationError) Error() string {
	return e.format("api route")
}

// Is reports whether target is ErrValidation.
func (e *RouteValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DocumentValidationError is returned by NewDocument when the document
// configuration itself is unusable.
type DocumentValidationError struct {
	ValidationError
}

// Error implements the error interface.
func (e *DocumentValidationError) Error() string {
	return e.format("document")
}

// Is reports whether target is ErrValidation.
func (e *DocumentValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newRequestBodyError(field, message string) error {
	return &RequestBodyValidationError{ValidationError{Field: field, Message: message}}
}

func newResponseStatusError(field, message string) error {
	return &ResponseStatusValidationError{ValidationError{Field: field, Message: message}}
}

func newRouteError(field, message string) error {
	return &RouteValidationError{ValidationError{Field: field, Message: message}}
}
