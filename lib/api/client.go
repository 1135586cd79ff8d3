// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// maxResponseBytes caps how much of a response body the client reads.
// Railway responses are small JSON documents; anything larger is a
// misbehaving server, not data we want in memory.
const maxResponseBytes = 4 << 20

// TokenSource supplies the current session token for outgoing
// requests. An empty string means no session: the request is sent
// without an Authorization header. The session store implements this,
// which keeps the client decoupled from how credentials are persisted.
type TokenSource interface {
	Token() string
}

// Config holds configuration for creating a railway API Client.
type Config struct {
	// BaseURL is the root URL of the railway service
	// (e.g., "https://railway.example.com/api"). Required.
	BaseURL string

	// Tokens supplies the session token attached to authenticated
	// requests. Optional — a nil source produces an anonymous client
	// that can only call the public availability endpoint.
	Tokens TokenSource

	// AdminKey is the static credential attached as X-Admin-Key on
	// admin operations. Optional; admin calls fail client-side with a
	// clear error when it is empty.
	AdminKey string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed railway REST API client. All credential decoration
// happens inside do(): operations never assemble auth headers.
type Client struct {
	baseURL    string
	tokens     TokenSource
	adminKey   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a railway API client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("railway: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("railway: BaseURL must be an http(s) URL (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		tokens:     config.Tokens,
		adminKey:   config.AdminKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// HasToken reports whether a session token is currently available.
// Flows use this as the pre-flight auth gate: booking and admin
// actions must not touch the network without a token.
func (client *Client) HasToken() bool {
	return client.tokens != nil && client.tokens.Token() != ""
}

// requestOptions control per-request decoration applied by do.
type requestOptions struct {
	// admin attaches the X-Admin-Key header. Requests with admin set
	// fail before any network access when no admin key is configured.
	admin bool

	// headers are extra headers merged into the request (used for the
	// booking idempotency key).
	headers map[string]string
}

// do executes a railway API request. The path is relative to the base
// URL (e.g., "/trains/availability"). The request body, if non-nil, is
// JSON-encoded; the response body is decoded into result when result
// is non-nil. Non-2xx responses return an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any, result any, options requestOptions) error {
	if options.admin && client.adminKey == "" {
		return fmt.Errorf("railway: admin key not configured (set admin_key in the config file or RAILBOOK_ADMIN_KEY)")
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("railway: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	url := client.baseURL + path
	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("railway: creating request: %w", err)
	}

	// Credential decoration. The token is read fresh on every request
	// so a re-login mid-session takes effect without rebuilding the
	// client.
	if client.tokens != nil {
		if token := client.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if options.admin {
		request.Header.Set("X-Admin-Key", client.adminKey)
	}

	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for name, value := range options.headers {
		request.Header.Set(name, value)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("railway: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("railway: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiError := parseAPIError(response.StatusCode, body)
		client.logger.Debug("railway request failed",
			"method", method,
			"path", path,
			"status", response.StatusCode,
		)
		return apiError
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("railway: decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// get is a convenience method for GET requests returning JSON.
func (client *Client) get(ctx context.Context, path string, result any, options requestOptions) error {
	return client.do(ctx, http.MethodGet, path, nil, result, options)
}

// post is a convenience method for POST requests returning JSON.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any, options requestOptions) error {
	return client.do(ctx, http.MethodPost, path, requestBody, result, options)
}

// put is a convenience method for PUT requests returning JSON.
func (client *Client) put(ctx context.Context, path string, requestBody any, result any, options requestOptions) error {
	return client.do(ctx, http.MethodPut, path, requestBody, result, options)
}

// delete is a convenience method for DELETE requests.
func (client *Client) delete(ctx context.Context, path string, options requestOptions) error {
	return client.do(ctx, http.MethodDelete, path, nil, nil, options)
}
