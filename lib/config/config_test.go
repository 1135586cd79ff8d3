// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RAILBOOK_SERVER_URL", "")
	t.Setenv("RAILBOOK_ADMIN_KEY", "")
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server_url: https://railway.example.com/api\nadmin_key: key-from-file\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.ServerURL != "https://railway.example.com/api" {
		t.Errorf("ServerURL = %q, want file value", loaded.ServerURL)
	}
	if loaded.AdminKey != "key-from-file" {
		t.Errorf("AdminKey = %q, want file value", loaded.AdminKey)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", loaded.ServerURL, DefaultServerURL)
	}
	if loaded.AdminKey != "" {
		t.Errorf("AdminKey = %q, want empty", loaded.AdminKey)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server_url: https://file.example.com\nadmin_key: file-key\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RAILBOOK_SERVER_URL", "https://env.example.com")
	t.Setenv("RAILBOOK_ADMIN_KEY", "env-key")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.ServerURL != "https://env.example.com" {
		t.Errorf("ServerURL = %q, want env value", loaded.ServerURL)
	}
	if loaded.AdminKey != "env-key" {
		t.Errorf("AdminKey = %q, want env value", loaded.AdminKey)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server_url: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("RAILBOOK_CONFIG", "/custom/config.yaml")
	if path := DefaultPath(); path != "/custom/config.yaml" {
		t.Errorf("DefaultPath() = %q, want env override", path)
	}
}
