// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the railbook client configuration: where the
// railway service lives and the static admin key for inventory
// management. The admin key ships with every client install and is not
// treated as a secret — real authorization is enforced server-side.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL is used when neither the config file nor the
// environment names a railway service.
const DefaultServerURL = "http://localhost:8000/api"

// Config holds client settings. Resolution order for each field:
// environment variable, then config file, then default.
type Config struct {
	// ServerURL is the base URL of the railway REST service.
	ServerURL string `yaml:"server_url"`

	// AdminKey is attached as X-Admin-Key on admin operations.
	// Optional; non-admin use never needs it.
	AdminKey string `yaml:"admin_key"`
}

// DefaultPath returns the config file location. Checks RAILBOOK_CONFIG
// first, then $XDG_CONFIG_HOME/railbook/config.yaml, then
// ~/.config/railbook/config.yaml.
func DefaultPath() string {
	if envPath := os.Getenv("RAILBOOK_CONFIG"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "railbook-config.yaml")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "railbook", "config.yaml")
}

// Load reads the configuration from path (empty = DefaultPath),
// applies environment overrides, and fills defaults. A missing file is
// not an error — the defaults describe a local development setup.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	var loaded Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: env and defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if envURL := os.Getenv("RAILBOOK_SERVER_URL"); envURL != "" {
		loaded.ServerURL = envURL
	}
	if envKey := os.Getenv("RAILBOOK_ADMIN_KEY"); envKey != "" {
		loaded.AdminKey = envKey
	}
	if loaded.ServerURL == "" {
		loaded.ServerURL = DefaultServerURL
	}

	return loaded, nil
}
