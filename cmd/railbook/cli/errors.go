// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/railbook-project/railbook/lib/api"
)

// ErrorCategory classifies command errors so the process exit code
// reflects what went wrong, letting scripts branch without parsing
// error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing arguments, out-of-range seat counts, unparseable values.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown train id, unknown booking id.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryAuth indicates missing or rejected credentials. The user
	// should log in again (or configure the admin key).
	CategoryAuth ErrorCategory = "auth"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout. Retrying may succeed.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, malformed server responses.
	CategoryInternal ErrorCategory = "internal"
)

// exitCodes maps categories to process exit codes. 1 is reserved for
// uncategorized errors.
var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryNotFound:   3,
	CategoryAuth:       4,
	CategoryTransient:  5,
	CategoryInternal:   1,
}

// CommandError is a categorized error returned by railbook commands.
// It wraps an inner error, preserving the chain for errors.Is and
// errors.As while adding the category used for the exit code.
type CommandError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying error message.
func (e *CommandError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for this error's category.
func (e *CommandError) ExitCode() int {
	if code, ok := exitCodes[e.Category]; ok {
		return code
	}
	return 1
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Auth creates an auth error: missing or rejected credentials.
func Auth(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryAuth, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may
// succeed on retry.
func Transient(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or
// I/O error.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// FromAPI categorizes an error returned by the railway client. Server
// status codes map onto categories; network-level failures are
// transient.
func FromAPI(err error) *CommandError {
	category := CategoryInternal
	switch {
	case api.IsValidation(err):
		category = CategoryValidation
	case api.IsNotFound(err):
		category = CategoryNotFound
	case api.IsUnauthorized(err), api.IsForbidden(err):
		category = CategoryAuth
	case isNetworkError(err):
		category = CategoryTransient
	}
	return &CommandError{Category: category, Err: err}
}

// isNetworkError reports whether err is a transport-level failure
// rather than a server response.
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
