// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
	"github.com/railbook-project/railbook/lib/session"
)

func loginCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save the session locally",
		Description: `Log in to the railway service and save the session locally.

After login, commands like "railbook book" and "railbook bookings" use
the saved session transparently. The session file is stored at
~/.config/railbook/session.json (or $RAILBOOK_SESSION_FILE if set, or
$XDG_CONFIG_HOME/railbook/session.json) with mode 0600 since it
contains an access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "railbook login <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "railbook login priya",
			},
			{
				Description: "Log in with password from file",
				Command:     "railbook login priya --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&passwordFile, "password-file", "",
				"path to file containing password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return cli.Validation("username is required\n\nUsage: railbook login <username> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := cli.ReadPassword("Password: ", passwordFile)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			client, err := app.client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			result, err := client.Login(ctx, username, password)
			if err != nil {
				return cli.FromAPI(err)
			}

			if err := app.sessions.Save(session.Session{Token: result.Access, Role: result.Role}); err != nil {
				return cli.Internal("saving session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", username, result.Role)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", app.sessions.Path())
			return nil
		},
	}
}

func signupCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "signup",
		Summary: "Register a new account",
		Description: `Register a new railway account with the "user" role.

The password is prompted twice interactively unless --password-file is
given. Signup does not log in; run "railbook login" afterwards.`,
		Usage: "railbook signup <username> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("signup", pflag.ContinueOnError)
			flags.StringVar(&passwordFile, "password-file", "",
				"path to file containing password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return cli.Validation("username is required\n\nUsage: railbook signup <username> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := cli.ReadPassword("Password: ", passwordFile)
			if err != nil {
				return err
			}
			if passwordFile == "" || passwordFile == "-" {
				confirmation, err := cli.ReadPassword("Confirm password: ", passwordFile)
				if err != nil {
					return err
				}
				if confirmation != password {
					return cli.Validation("passwords do not match")
				}
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			client, err := app.client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			result, err := client.Signup(ctx, username, password)
			if err != nil {
				return cli.FromAPI(err)
			}

			fmt.Fprintf(os.Stderr, "Account created for %s (user id %d)\n", username, result.UserID)
			fmt.Fprintf(os.Stderr, "Run \"railbook login %s\" to sign in.\n", username)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Remove the saved session",
		Usage:   "railbook logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.sessions.Clear(); err != nil {
				return cli.Internal("clearing session: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the current session state",
		Usage:   "railbook whoami",
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			app, err := newApp()
			if err != nil {
				return err
			}
			if !app.sessions.LoggedIn() {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("Logged in with role %q\n", app.sessions.Role())
			fmt.Printf("Session file: %s\n", app.sessions.Path())
			return nil
		},
	}
}
