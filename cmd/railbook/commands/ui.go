// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
	"github.com/railbook-project/railbook/cmd/railbook/ui"
)

func uiCommand() *cli.Command {
	var downloadDir string

	return &cli.Command{
		Name:    "ui",
		Summary: "Open the interactive booking interface",
		Description: `Open the full-screen booking interface: search trains with
station autocomplete, book seats, view confirmations and history, and
(for admins) manage the inventory.

Login is not required to search; the interface prompts for credentials
when an action needs them.`,
		Usage: "railbook ui [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("ui", pflag.ContinueOnError)
			flags.StringVar(&downloadDir, "download-dir", "",
				"directory for downloaded tickets (default: current directory)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			client, err := app.client()
			if err != nil {
				return err
			}

			return ui.Run(ui.Options{
				Client:      client,
				Sessions:    app.sessions,
				DownloadDir: downloadDir,
				Logger:      app.logger,
			})
		},
	}
}
