// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// staticTokens is a TokenSource with a fixed value.
type staticTokens struct {
	token string
}

func (tokens *staticTokens) Token() string { return tokens.token }

func newTestClient(t *testing.T, serverURL string, config Config) *Client {
	t.Helper()
	config.BaseURL = serverURL
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("NewClient with empty BaseURL should fail")
	}
	if _, err := NewClient(Config{BaseURL: "railway.example.com"}); err == nil {
		t.Error("NewClient with schemeless BaseURL should fail")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api/", Config{})
	if _, err := client.Availability(context.Background(), "Howrah", "Kolkata"); err != nil {
		t.Fatalf("Availability() error: %v", err)
	}
	if requestedPath != "/api/trains/availability" {
		t.Errorf("requested path = %q, want /api/trains/availability", requestedPath)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{Tokens: &staticTokens{token: "tok-123"}})
	if _, err := client.MyBookings(context.Background()); err != nil {
		t.Fatalf("MyBookings() error: %v", err)
	}
	if authHeader != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", authHeader, "Bearer tok-123")
	}
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var authHeader string
	var present bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader, present = r.Header.Get("Authorization"), r.Header.Values("Authorization") != nil
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{Tokens: &staticTokens{}})
	if _, err := client.Availability(context.Background(), "Pune", "Nagpur"); err != nil {
		t.Fatalf("Availability() error: %v", err)
	}
	if present {
		t.Errorf("anonymous request carried Authorization header %q", authHeader)
	}
}

func TestClient_TokenReadFreshPerRequest(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	tokens := &staticTokens{token: "first"}
	client := newTestClient(t, server.URL, Config{Tokens: tokens})

	if _, err := client.MyBookings(context.Background()); err != nil {
		t.Fatalf("MyBookings() error: %v", err)
	}
	tokens.token = "second"
	if _, err := client.MyBookings(context.Background()); err != nil {
		t.Fatalf("MyBookings() error: %v", err)
	}

	if len(headers) != 2 || headers[0] != "Bearer first" || headers[1] != "Bearer second" {
		t.Errorf("Authorization headers = %v, want re-read token per request", headers)
	}
}

func TestClient_AdminKeyRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("admin request without key reached the server")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{})
	_, err := client.ListAllTrains(context.Background())
	if err == nil {
		t.Fatal("ListAllTrains without admin key should fail")
	}
	if !strings.Contains(err.Error(), "admin key not configured") {
		t.Errorf("error = %q, want admin key hint", err)
	}
}

func TestClient_AdminKeyHeader(t *testing.T) {
	var adminHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminHeader = r.Header.Get("X-Admin-Key")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{AdminKey: "sekrit"})
	if _, err := client.ListAllTrains(context.Background()); err != nil {
		t.Fatalf("ListAllTrains() error: %v", err)
	}
	if adminHeader != "sekrit" {
		t.Errorf("X-Admin-Key = %q, want %q", adminHeader, "sekrit")
	}
}

func TestClient_HasToken(t *testing.T) {
	client := newTestClient(t, "http://localhost:1", Config{})
	if client.HasToken() {
		t.Error("HasToken() with nil source should be false")
	}

	client = newTestClient(t, "http://localhost:1", Config{Tokens: &staticTokens{token: "t"}})
	if !client.HasToken() {
		t.Error("HasToken() with token should be true")
	}
}

func TestParseAPIError_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       string
	}{
		{"message shape", 400, `{"message": "invalid seat count"}`, "invalid seat count"},
		{"detail shape", 401, `{"detail": "token expired"}`, "token expired"},
		{"plain body", 500, "upstream exploded", "upstream exploded"},
		{"empty body", 503, "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			apiError := parseAPIError(test.statusCode, []byte(test.body))
			if apiError.StatusCode != test.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiError.StatusCode, test.statusCode)
			}
			if apiError.Message != test.want {
				t.Errorf("Message = %q, want %q", apiError.Message, test.want)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no such booking"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{})
	_, err := client.GetBooking(context.Background(), 999)
	if err == nil {
		t.Fatal("GetBooking for missing id should fail")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
	if IsUnauthorized(err) || IsForbidden(err) || IsValidation(err) {
		t.Errorf("predicates misclassified %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error text %q should carry the status code", err)
	}
}
