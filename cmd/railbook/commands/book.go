// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
)

func bookCommand() *cli.Command {
	var seats int
	var outputJSON bool

	return &cli.Command{
		Name:    "book",
		Summary: "Book seats on a train",
		Description: `Reserve seats on a train. Requires login.

Between one and six seats can be booked per trip. The service assigns
specific seat numbers; view them with "railbook bookings <id>".`,
		Usage: "railbook book <train-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Book three seats on train 12",
				Command:     "railbook book 12 --seats 3",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("book", pflag.ContinueOnError)
			flags.IntVar(&seats, "seats", 1, "number of seats to book (1-6)")
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("train id is required\n\nUsage: railbook book <train-id> [flags]")
			}
			trainID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid train id %q", args[0])
			}
			if seats < 1 || seats > 6 {
				return cli.Validation("--seats must be between 1 and 6 (got %d)", seats)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.requireLogin(); err != nil {
				return err
			}
			client, err := app.client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			receipt, err := client.BookSeats(ctx, trainID, seats)
			if err != nil {
				return cli.FromAPI(err)
			}

			if outputJSON {
				return cli.WriteJSON(receipt)
			}

			numbers := make([]string, len(receipt.SeatNumbers))
			for index, seat := range receipt.SeatNumbers {
				numbers[index] = strconv.Itoa(seat)
			}
			fmt.Printf("Booking confirmed: id %d, seats %s\n",
				receipt.BookingID, strings.Join(numbers, ", "))
			fmt.Printf("View details with \"railbook bookings %d\".\n", receipt.BookingID)
			return nil
		},
	}
}
