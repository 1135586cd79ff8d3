// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is a typed client for the railway booking REST service.
//
// The client owns credential decoration: every request carries the
// current session's bearer token when one exists, and admin operations
// additionally carry the static X-Admin-Key header. Call sites never
// assemble auth headers themselves.
//
// Error handling is uniform: any non-2xx response surfaces as an
// *APIError parsed from the service's {"message": ...} body. The client
// performs exactly one attempt per call — no retry, no token refresh.
package api
