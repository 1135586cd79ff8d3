// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/railbook-project/railbook/cmd/railbook/cli"
	"github.com/railbook-project/railbook/lib/ticket"
)

func bookingsCommand() *cli.Command {
	var download bool
	var downloadDir string
	var outputJSON bool

	return &cli.Command{
		Name:    "bookings",
		Summary: "List your bookings or show one in detail",
		Description: `Without arguments, list all of your bookings. With a booking id,
show that booking's full details including assigned seat numbers.

--download writes the plain-text e-ticket (ticket-<id>.txt) for the
given booking to the current directory (or --dir).`,
		Usage: "railbook bookings [booking-id] [flags]",
		Examples: []cli.Example{
			{
				Description: "List all your bookings",
				Command:     "railbook bookings",
			},
			{
				Description: "Download the e-ticket for booking 7",
				Command:     "railbook bookings 7 --download",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("bookings", pflag.ContinueOnError)
			flags.BoolVar(&download, "download", false, "write the e-ticket file (requires a booking id)")
			flags.StringVar(&downloadDir, "dir", "", "directory for downloaded tickets (default: current directory)")
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}
			if download && len(args) == 0 {
				return cli.Validation("--download requires a booking id")
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

			if len(args) == 1 {
				bookingID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return cli.Validation("invalid booking id %q", args[0])
				}
				booking, err := client.GetBooking(ctx, bookingID)
				if err != nil {
					return cli.FromAPI(err)
				}

				if download {
					path, err := ticket.WriteFile(downloadDir, booking)
					if err != nil {
						return cli.Internal("%s", err.Error())
					}
					fmt.Printf("Ticket saved to %s\n", path)
					return nil
				}
				if outputJSON {
					return cli.WriteJSON(booking)
				}
				fmt.Print(ticket.RenderText(booking))
				return nil
			}

			bookings, err := client.MyBookings(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}
			if outputJSON {
				return cli.WriteJSON(bookings)
			}
			if len(bookings) == 0 {
				fmt.Println("You have no bookings yet.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tTRAIN\tSEATS\tDEPARTS\tARRIVES")
			for _, booking := range bookings {
				numbers := make([]string, len(booking.SeatNumbers))
				for index, seat := range booking.SeatNumbers {
					numbers[index] = strconv.Itoa(seat)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					booking.BookingID, booking.TrainName, strings.Join(numbers, ","),
					booking.ArrivalTimeAtSource, booking.ArrivalTimeAtDestination)
			}
			return tw.Flush()
		},
	}
}
