// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Seat count bounds for a single booking.
const (
	minSeats = 1
	maxSeats = 6
)

// BookingForm holds the booking page state for one train.
type BookingForm struct {
	TrainID   int64
	TrainName string

	// Seats is the requested seat count, always within [minSeats,
	// maxSeats] — every mutation goes through clampSeats.
	Seats int

	// Pending is true while a booking request is in flight. The submit
	// trigger is ignored while set, so at most one submission can be
	// outstanding per user interaction.
	Pending bool
}

// newBookingForm creates a form for the given train with the minimum
// seat count preselected.
func newBookingForm(trainID int64, trainName string) BookingForm {
	return BookingForm{TrainID: trainID, TrainName: trainName, Seats: minSeats}
}

// clampSeats forces a seat count into the closed interval [1, 6].
func clampSeats(seats int) int {
	if seats < minSeats {
		return minSeats
	}
	if seats > maxSeats {
		return maxSeats
	}
	return seats
}

// parseSeats converts free-text seat input to an effective count:
// clamped when numeric, the minimum when not.
func parseSeats(text string) int {
	seats, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return minSeats
	}
	return clampSeats(seats)
}

// SetSeats replaces the seat count, clamping into range.
func (form *BookingForm) SetSeats(seats int) {
	form.Seats = clampSeats(seats)
}

// SetSeatsFromText replaces the seat count from typed input.
func (form *BookingForm) SetSeatsFromText(text string) {
	form.Seats = parseSeats(text)
}

// Increment raises the seat count by one, clamped.
func (form *BookingForm) Increment() { form.SetSeats(form.Seats + 1) }

// Decrement lowers the seat count by one, clamped.
func (form *BookingForm) Decrement() { form.SetSeats(form.Seats - 1) }

// viewBooking renders the booking page.
func (model *Model) viewBooking() string {
	form := &model.booking
	theme := model.theme

	header := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
		Render("Book Your Journey")

	name := form.TrainName
	if name == "" {
		name = fmt.Sprintf("Train %d", form.TrainID)
	}

	var body strings.Builder
	body.WriteString(header + "\n\n")
	fmt.Fprintf(&body, "  %s  (train id %d)\n\n",
		lipgloss.NewStyle().Foreground(theme.AccentText).Render(name), form.TrainID)

	seatLine := fmt.Sprintf("  Number of seats: %s",
		lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
			Render(strconv.Itoa(form.Seats)))
	body.WriteString(seatLine + "\n")
	body.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).
		Render("  Maximum 6 seats per booking") + "\n\n")

	if form.Pending {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
			Render("  Booking…") + "\n")
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("  ↑/↓ or 1-6 choose seats · enter confirm booking · esc back") + "\n")
	}

	return body.String()
}
