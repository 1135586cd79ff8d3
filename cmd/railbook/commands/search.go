// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
	"github.com/railbook-project/railbook/lib/station"
)

func searchCommand() *cli.Command {
	var outputJSON bool

	return &cli.Command{
		Name:    "search",
		Summary: "Search trains between two stations",
		Description: `List trains running between a source and destination station,
with remaining seat availability. No login is required to search.`,
		Usage: "railbook search <source> <destination> [flags]",
		Examples: []cli.Example{
			{
				Description: "Trains from Howrah to New Delhi",
				Command:     `railbook search Howrah "New Delhi"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("source and destination are required\n\nUsage: railbook search <source> <destination>")
			}
			source, destination := args[0], args[1]
			if source == destination {
				return cli.Validation("source and destination must differ")
			}
			if !station.Known(source) {
				fmt.Fprintf(os.Stderr, "note: %q is not a known station\n", source)
			}
			if !station.Known(destination) {
				fmt.Fprintf(os.Stderr, "note: %q is not a known station\n", destination)
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

			trains, err := client.Availability(ctx, source, destination)
			if err != nil {
				return cli.FromAPI(err)
			}

			if outputJSON {
				return cli.WriteJSON(trains)
			}

			if len(trains) == 0 {
				fmt.Printf("No trains found from %s to %s.\n", source, destination)
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDEPARTS\tARRIVES\tAVAILABLE")
			for _, train := range trains {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
					train.TrainID, train.TrainName,
					train.ArrivalTimeAtSource, train.ArrivalTimeAtDestination,
					train.AvailableSeats)
			}
			return tw.Flush()
		},
	}
}
