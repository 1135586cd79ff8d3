// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket renders a booking as a plain-text e-ticket and saves
// it locally. Rendering is pure; only WriteFile touches the disk.
package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/railbook-project/railbook/lib/api"
)

// RenderText serializes a booking into the plain-text ticket body used
// by the download action.
func RenderText(booking api.Booking) string {
	seats := make([]string, len(booking.SeatNumbers))
	for index, seat := range booking.SeatNumbers {
		seats[index] = strconv.Itoa(seat)
	}

	var body strings.Builder
	body.WriteString("RAILBOOK E-TICKET\n")
	body.WriteString("=================\n")
	fmt.Fprintf(&body, "Booking ID: %d\n", booking.BookingID)
	fmt.Fprintf(&body, "Train: %s\n", booking.TrainName)
	fmt.Fprintf(&body, "Seats: %s\n", strings.Join(seats, ", "))
	fmt.Fprintf(&body, "Journey: %s to %s\n", booking.ArrivalTimeAtSource, booking.ArrivalTimeAtDestination)
	body.WriteString("Status: Confirmed\n")
	return body.String()
}

// Filename returns the canonical file name for a booking's ticket.
func Filename(booking api.Booking) string {
	return fmt.Sprintf("ticket-%d.txt", booking.BookingID)
}

// WriteFile saves the rendered ticket under directory (empty = current
// working directory) and returns the full path written.
func WriteFile(directory string, booking api.Booking) (string, error) {
	if directory == "" {
		directory = "."
	}
	path := filepath.Join(directory, Filename(booking))
	if err := os.WriteFile(path, []byte(RenderText(booking)), 0644); err != nil {
		return "", fmt.Errorf("writing ticket %s: %w", path, err)
	}
	return path, nil
}
