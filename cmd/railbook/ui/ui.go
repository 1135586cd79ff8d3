// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui launches the interactive booking interface. It is the
// only CLI package that imports bubbletea, keeping the one-shot
// commands free of TUI dependencies.
package ui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/railbook-project/railbook/lib/api"
	"github.com/railbook-project/railbook/lib/bookingui"
	"github.com/railbook-project/railbook/lib/session"
)

// Options configures the interactive interface.
type Options struct {
	Client      *api.Client
	Sessions    *session.Store
	DownloadDir string
	Logger      *slog.Logger
}

// Run starts the booking TUI and blocks until the user quits.
func Run(options Options) error {
	model, err := bookingui.NewModel(bookingui.Config{
		Client:      options.Client,
		Sessions:    options.Sessions,
		DownloadDir: options.DownloadDir,
		Logger:      options.Logger,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running booking interface: %w", err)
	}
	return nil
}
