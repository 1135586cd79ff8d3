// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	saved := Session{Token: "tok-abc", Role: "admin"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A fresh store reads the same state back from disk.
	reloaded := NewStore(path)
	loaded, err := reloaded.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded != saved {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Load() error = %v, want ErrNoSession", err)
	}
}

func TestStore_LoadRejectsTokenlessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"role": "user"}`), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("Load() should reject a session file without a token")
	}
}

func TestStore_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewStore(path)
	if err := store.Save(Session{Token: "t"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %o, want 0600", mode)
	}

	directoryInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if mode := directoryInfo.Mode().Perm(); mode != 0700 {
		t.Errorf("session directory mode = %o, want 0700", mode)
	}
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if err := store.Save(Session{Token: "t", Role: "user"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Clear() should remove the session file")
	}
	if store.LoggedIn() {
		t.Error("LoggedIn() should be false after Clear()")
	}

	// Clearing again is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on absent file error: %v", err)
	}
}

func TestStore_TokenLazyLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := NewStore(path).Save(Session{Token: "persisted", Role: "user"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A store that never called Load picks up the existing file on
	// first token access.
	store := NewStore(path)
	if token := store.Token(); token != "persisted" {
		t.Errorf("Token() = %q, want %q", token, "persisted")
	}
	if role := store.Role(); role != "user" {
		t.Errorf("Role() = %q, want %q", role, "user")
	}
	if !store.LoggedIn() {
		t.Error("LoggedIn() = false, want true")
	}
}

func TestStore_TokenMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	if token := store.Token(); token != "" {
		t.Errorf("Token() = %q, want empty", token)
	}
	if store.LoggedIn() {
		t.Error("LoggedIn() = true, want false")
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("RAILBOOK_SESSION_FILE", "/custom/session.json")
	if path := DefaultPath(); path != "/custom/session.json" {
		t.Errorf("DefaultPath() = %q, want env override", path)
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("RAILBOOK_SESSION_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "railbook", "session.json")
	if path := DefaultPath(); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
