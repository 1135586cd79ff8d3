// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
	"github.com/railbook-project/railbook/lib/api"
)

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:    "admin",
		Summary: "Manage the train inventory (requires admin key)",
		Description: `Administrative operations on the train inventory.

All admin commands require the service admin key, configured as
admin_key in the config file or via RAILBOOK_ADMIN_KEY.`,
		Subcommands: []*cli.Command{
			adminTrainCommand(),
		},
	}
}

func adminTrainCommand() *cli.Command {
	return &cli.Command{
		Name:    "train",
		Summary: "Add, list, remove, or resize trains",
		Subcommands: []*cli.Command{
			adminTrainAddCommand(),
			adminTrainListCommand(),
			adminTrainRemoveCommand(),
			adminTrainUpdateSeatsCommand(),
		},
	}
}

func adminTrainAddCommand() *cli.Command {
	var draft api.TrainDraft

	return &cli.Command{
		Name:    "add",
		Summary: "Register a new train",
		Usage:   "railbook admin train add --name <name> --from <station> --to <station> --capacity <n> [flags]",
		Examples: []cli.Example{
			{
				Description: "Add a morning express",
				Command: `railbook admin train add --name "Shatabdi Express" --from Howrah --to "New Delhi" ` +
					`--capacity 120 --departs 06:00 --arrives 14:30`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("add", pflag.ContinueOnError)
			flags.StringVar(&draft.TrainName, "name", "", "train name")
			flags.StringVar(&draft.Source, "from", "", "source station")
			flags.StringVar(&draft.Destination, "to", "", "destination station")
			flags.IntVar(&draft.SeatCapacity, "capacity", 0, "total seat capacity")
			flags.StringVar(&draft.ArrivalTimeAtSource, "departs", "", "departure time at source (HH:MM)")
			flags.StringVar(&draft.ArrivalTimeAtDestination, "arrives", "", "arrival time at destination (HH:MM)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if draft.TrainName == "" || draft.Source == "" || draft.Destination == "" {
				return cli.Validation("--name, --from, and --to are required")
			}
			if draft.SeatCapacity <= 0 {
				return cli.Validation("--capacity must be a positive number")
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

			trainID, err := client.CreateTrain(ctx, draft)
			if err != nil {
				return cli.FromAPI(err)
			}
			fmt.Printf("Train %q created with id %d.\n", draft.TrainName, trainID)
			return nil
		},
	}
}

func adminTrainListCommand() *cli.Command {
	var outputJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List the full train inventory",
		Usage:   "railbook admin train list [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
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

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			trains, err := client.ListAllTrains(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}
			if outputJSON {
				return cli.WriteJSON(trains)
			}
			if len(trains) == 0 {
				fmt.Println("No trains in the inventory.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tROUTE\tDEPARTS\tARRIVES\tFREE/TOTAL")
			for _, train := range trains {
				fmt.Fprintf(tw, "%d\t%s\t%s → %s\t%s\t%s\t%d/%d\n",
					train.TrainID, train.TrainName, train.Source, train.Destination,
					train.ArrivalTimeAtSource, train.ArrivalTimeAtDestination,
					train.AvailableSeats, train.SeatCapacity)
			}
			return tw.Flush()
		},
	}
}

func adminTrainRemoveCommand() *cli.Command {
	var yes bool

	return &cli.Command{
		Name:    "remove",
		Summary: "Delete a train from the inventory",
		Description: `Delete a train. This is irreversible; existing bookings on the
train are orphaned. The command asks for confirmation unless --yes is
given.`,
		Usage: "railbook admin train remove <train-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("remove", pflag.ContinueOnError)
			flags.BoolVar(&yes, "yes", false, "skip the confirmation prompt")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("train id is required\n\nUsage: railbook admin train remove <train-id>")
			}
			trainID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid train id %q", args[0])
			}

			if !yes {
				confirmed, err := confirm(fmt.Sprintf("Delete train %d? This cannot be undone.", trainID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(os.Stderr, "Cancelled.")
					return nil
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

			if err := client.DeleteTrain(ctx, trainID); err != nil {
				return cli.FromAPI(err)
			}
			fmt.Printf("Train %d deleted.\n", trainID)
			return nil
		},
	}
}

func adminTrainUpdateSeatsCommand() *cli.Command {
	return &cli.Command{
		Name:    "update-seats",
		Summary: "Change a train's total seat capacity",
		Usage:   "railbook admin train update-seats <train-id> <capacity>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("train id and capacity are required\n\nUsage: railbook admin train update-seats <train-id> <capacity>")
			}
			trainID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid train id %q", args[0])
			}
			capacity, err := strconv.Atoi(args[1])
			if err != nil || capacity <= 0 {
				return cli.Validation("capacity must be a positive number (got %q)", args[1])
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

			newCapacity, err := client.UpdateSeatCapacity(ctx, trainID, capacity)
			if err != nil {
				return cli.FromAPI(err)
			}
			fmt.Printf("Train %d capacity is now %d.\n", trainID, newCapacity)
			return nil
		},
	}
}

// confirm asks a yes/no question on the terminal. Non-interactive
// stdin (a script piping commands) is rejected so a deletion can never
// happen by accident; scripts must pass --yes explicitly.
func confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, cli.Validation("no terminal available for confirmation (use --yes)")
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, cli.Internal("reading confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
