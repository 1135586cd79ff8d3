// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete railbook CLI command tree.
package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
	"github.com/railbook-project/railbook/lib/api"
	"github.com/railbook-project/railbook/lib/config"
	"github.com/railbook-project/railbook/lib/session"
	"github.com/railbook-project/railbook/lib/version"
)

// requestTimeout bounds every one-shot CLI request. The TUI manages
// its own per-page contexts instead.
const requestTimeout = 30 * time.Second

// app bundles the pieces every command needs: loaded configuration,
// the session store, and a scoped logger. Built once per invocation.
type app struct {
	config   config.Config
	sessions *session.Store
	logger   *slog.Logger
}

// newApp loads configuration from the default path (honoring env
// overrides) and opens the default session store.
func newApp() (*app, error) {
	loaded, err := config.Load("")
	if err != nil {
		return nil, cli.Internal("loading config: %w", err)
	}
	return &app{
		config:   loaded,
		sessions: session.NewStore(""),
		logger:   cli.NewCommandLogger(),
	}, nil
}

// client builds the railway API client backed by the session store.
func (app *app) client() (*api.Client, error) {
	client, err := api.NewClient(api.Config{
		BaseURL:  app.config.ServerURL,
		Tokens:   app.sessions,
		AdminKey: app.config.AdminKey,
		Logger:   app.logger,
	})
	if err != nil {
		return nil, cli.Internal("creating API client: %w", err)
	}
	return client, nil
}

// requireLogin fails with an auth error when no session is stored.
// Commands call this before hitting gated endpoints so the user gets
// a clear "log in first" message instead of a server 401.
func (app *app) requireLogin() error {
	if !app.sessions.LoggedIn() {
		return cli.Auth("%s", session.ErrNoSession.Error())
	}
	return nil
}

// Root builds and returns the complete railbook CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "railbook",
		Description: `Railbook: terminal client for the railway booking service.

Search trains between stations, book up to six seats per trip, view
and download booking confirmations, and manage the train inventory
(admins). Run "railbook ui" for the interactive interface.`,
		Subcommands: []*cli.Command{
			loginCommand(),
			signupCommand(),
			logoutCommand(),
			whoamiCommand(),
			searchCommand(),
			bookCommand(),
			bookingsCommand(),
			adminCommand(),
			uiCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("railbook %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Open the interactive booking interface",
				Command:     "railbook ui",
			},
			{
				Description: "Log in (prompts for password, saves session locally)",
				Command:     "railbook login priya",
			},
			{
				Description: "Search for trains between two stations",
				Command:     `railbook search Howrah "New Delhi"`,
			},
			{
				Description: "Book three seats on train 12",
				Command:     "railbook book 12 --seats 3",
			},
			{
				Description: "Download the e-ticket for booking 7",
				Command:     "railbook bookings 7 --download",
			},
			{
				Description: "List the full train inventory (admin)",
				Command:     "railbook admin train list",
			},
		},
	}
}
