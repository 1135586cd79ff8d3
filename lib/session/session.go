// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package session persists the user's railway session (bearer token
// plus role) between invocations. The session file is the terminal
// equivalent of the browser's local storage: written at login, read by
// every gated action, removed at logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSession is returned when no session file exists. Callers show
// it directly; the message tells the user how to fix the situation.
var ErrNoSession = errors.New(`not logged in — run "railbook login" first`)

// Session holds the persisted authentication state. Token is the
// opaque bearer credential; Role is "user" or "admin" as reported by
// the login endpoint. The client never inspects the token for expiry —
// a present token is treated as valid until the server rejects it.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// DefaultPath returns the session file location. Checks the
// RAILBOOK_SESSION_FILE environment variable first, then falls back to
// $XDG_CONFIG_HOME/railbook/session.json or
// ~/.config/railbook/session.json.
func DefaultPath() string {
	if envPath := os.Getenv("RAILBOOK_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join(os.TempDir(), "railbook-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "railbook", "session.json")
}

// Store reads and writes the session file. A Store is passed
// explicitly to the API client and commands rather than accessed as a
// process-wide global, so tests can point it at a fixture path.
//
// The in-memory copy is guarded by a mutex because TUI fetches run on
// background goroutines that read the token mid-flight.
type Store struct {
	path string

	mu      sync.RWMutex
	current Session
	loaded  bool
}

// NewStore creates a Store backed by the given file path. An empty
// path selects DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the file path backing this store.
func (store *Store) Path() string { return store.path }

// Load reads the session from disk. Returns ErrNoSession when the file
// does not exist.
func (store *Store) Load() (Session, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("reading session file %s: %w", store.path, err)
	}

	var loaded Session
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Session{}, fmt.Errorf("parsing session file %s: %w", store.path, err)
	}
	if loaded.Token == "" {
		return Session{}, fmt.Errorf("session file %s has no token", store.path)
	}

	store.mu.Lock()
	store.current = loaded
	store.loaded = true
	store.mu.Unlock()

	return loaded, nil
}

// Save writes the session to disk and updates the in-memory copy.
// Creates the parent directory with mode 0700 if needed; the file is
// written with mode 0600 since it contains an access token.
func (store *Store) Save(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}

	store.mu.Lock()
	store.current = sess
	store.loaded = true
	store.mu.Unlock()

	return nil
}

// Clear removes the session file and forgets the in-memory copy.
// Clearing an absent session is not an error.
func (store *Store) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}

	store.mu.Lock()
	store.current = Session{}
	store.loaded = true
	store.mu.Unlock()

	return nil
}

// Token returns the current session token, or "" when not logged in.
// Implements the API client's TokenSource. Loads from disk on first
// use so a freshly constructed Store picks up an existing login.
func (store *Store) Token() string {
	return store.snapshot().Token
}

// Role returns the current session role, or "" when not logged in.
func (store *Store) Role() string {
	return store.snapshot().Role
}

// LoggedIn reports whether a session token is present. Presence, not
// validity: the server is the authority on expiry.
func (store *Store) LoggedIn() bool {
	return store.Token() != ""
}

// snapshot returns the cached session, loading it from disk once if it
// has not been read yet. A missing or unreadable file simply yields an
// empty session.
func (store *Store) snapshot() Session {
	store.mu.RLock()
	if store.loaded {
		defer store.mu.RUnlock()
		return store.current
	}
	store.mu.RUnlock()

	loaded, err := store.Load()
	if err != nil {
		store.mu.Lock()
		store.loaded = true
		store.mu.Unlock()
		return Session{}
	}
	return loaded
}
