// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package apperr defines the centralized error framework for the MVS Mart storefront.

It provides a rich error type shared by both sides of the repository: the
storefront client uses it to classify failures at operation boundaries
(unauthenticated access, validation, remote, payment), and the development
backend uses it to map errors onto HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-friendly message.
  - Taxonomy: Constructors cover every failure class the storefront distinguishes.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.

Every error that crosses a component boundary should be wrapped as an [AppError]
so callers can branch on the class without string matching.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the storefront.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for logging only and is never rendered to users or sent
// to clients of the development backend.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "REMOTE_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to surface to the user.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code the error maps to.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client-Side Failure Classes

// Unauthenticated creates the error used when an authenticated operation is
// attempted without a token. The storefront short-circuits on it before any
// network call is made.
func Unauthenticated() *AppError {
	return &AppError{
		Code:       "UNAUTHENTICATED",
		Message:    "You need to log in first!",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Remote creates the error used when the backend returns a non-success
// response or the network call itself fails. The message is the server-provided
// one when available, otherwise a caller-supplied fallback.
func Remote(message string, cause error) *AppError {
	return &AppError{
		Code:       "REMOTE_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// Payment creates the error used for gateway-reported failures and
// verification mismatches during checkout.
func Payment(message string, cause error) *AppError {
	return &AppError{
		Code:       "PAYMENT_ERROR",
		Message:    message,
		HTTPStatus: http.StatusPaymentRequired,
		Cause:      cause,
	}
}

// # Request Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Product") // Returns "Product not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Conflict creates a 409 [AppError] for duplicate registrations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
