// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for xkcdbot.

It provides a rich error type that bridges low-level transport and decoding
failures with the two outward surfaces of the bot: chat replies and the ops
HTTP API.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-safe message.
  - Taxonomy: Comic resolution fails with exactly one of [CodeTransport] or [CodeDecode].
  - Mapping: Every AppError carries the HTTP status used by the ops server.

Chat entry points never show Message or Cause to users; they collapse every
resolution error into a single "not found" reply.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	// CodeTransport marks a network or HTTP-level failure talking to the archive.
	CodeTransport = "TRANSPORT_FAILURE"

	// CodeDecode marks a payload that did not parse into a valid comic record.
	CodeDecode = "DECODE_FAILURE"

	CodeValidation         = "VALIDATION_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError is the canonical error type for xkcdbot.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to chat
// users or HTTP clients.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "TRANSPORT_FAILURE").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the status code used when the error reaches the ops server.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field failures for VALIDATION_ERROR and DECODE_FAILURE.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level failure.
type FieldError struct {
	// Field is the JSON field name that failed.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
//
// Unlike the client-safe Message, the cause is appended so log lines stay useful.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Resolution Errors

// TransportFailure wraps a network error or a non-success archive response.
func TransportFailure(cause error) *AppError {
	return &AppError{
		Code:       CodeTransport,
		Message:    "Comic not found",
		HTTPStatus: http.StatusNotFound,
		Cause:      cause,
	}
}

// DecodeFailure wraps a payload that could not be turned into a comic record.
func DecodeFailure(cause error, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeDecode,
		Message:    "Comic not found",
		HTTPStatus: http.StatusNotFound,
		Cause:      cause,
		Details:    details,
	}
}

// # Client Errors (4xx)

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ServiceUnavailable creates a 503 [AppError]. The readiness probe attaches
// the failing dependencies as Details.
func ServiceUnavailable(msg string) *AppError {
	return &AppError{
		Code:       CodeServiceUnavailable,
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
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

// IsCode reports whether the first [*AppError] in err's chain has the given code.
func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// CodeOf returns the code of the first [*AppError] in err's chain, or
// [CodeInternal] for foreign errors.
func CodeOf(err error) string {
	if ae := As(err); ae != nil {
		return ae.Code
	}
	return CodeInternal
}
