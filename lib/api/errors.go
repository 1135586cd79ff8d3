// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the railway service.
// The service returns a JSON body with a top-level message on every
// error path; bodies that fail to parse are kept verbatim.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from the service.
	Message string
}

func (err *APIError) Error() string {
	message := strings.TrimSpace(err.Message)
	if message == "" {
		return fmt.Sprintf("railway: HTTP %d", err.StatusCode)
	}
	return fmt.Sprintf("railway: HTTP %d: %s", err.StatusCode, message)
}

// IsNotFound reports whether err is a railway 404 response (unknown
// train or booking id).
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is a railway 401 response. The
// client never validates tokens locally, so an expired-but-present
// token surfaces here on first use.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 401
}

// IsForbidden reports whether err is a railway 403 response (missing
// admin role or a bad admin key).
func IsForbidden(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 403
}

// IsValidation reports whether err is a railway 400 response (bad seat
// count, missing query parameters, malformed payload).
func IsValidation(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 400
}

// parseAPIError builds an *APIError from a status code and response
// body. The service wraps errors as {"message": "..."}; anything else
// is preserved as-is so no diagnostic detail is lost.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if json.Unmarshal(body, &wireError) == nil {
		switch {
		case wireError.Message != "":
			apiError.Message = wireError.Message
			return apiError
		case wireError.Detail != "":
			// The auth endpoints use DRF's {"detail": ...} shape.
			apiError.Message = wireError.Detail
			return apiError
		}
	}

	apiError.Message = string(body)
	return apiError
}
