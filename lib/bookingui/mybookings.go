// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/railbook-project/railbook/lib/api"
)

// HistoryState holds the booking history page. The list is refetched
// every time the page is entered so it reflects bookings made in other
// sessions too.
type HistoryState struct {
	Loading  bool
	Err      error
	Bookings []api.Booking
	Cursor   int
}

// TotalSeats sums seat counts across all bookings in the history.
func (state *HistoryState) TotalSeats() int {
	total := 0
	for _, booking := range state.Bookings {
		total += booking.NoOfSeats
	}
	return total
}

// Selected returns the booking under the cursor, or nil.
func (state *HistoryState) Selected() *api.Booking {
	if state.Cursor >= len(state.Bookings) {
		return nil
	}
	return &state.Bookings[state.Cursor]
}

// MoveUp moves the cursor up, stopping at the top.
func (state *HistoryState) MoveUp() {
	if state.Cursor > 0 {
		state.Cursor--
	}
}

// MoveDown moves the cursor down, stopping at the bottom.
func (state *HistoryState) MoveDown() {
	if state.Cursor < len(state.Bookings)-1 {
		state.Cursor++
	}
}

// viewHistory renders the booking history page.
func (model *Model) viewHistory() string {
	state := &model.history
	theme := model.theme

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
		Render("My Bookings") + "\n\n")

	switch {
	case state.Loading:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
			Render("Loading your bookings…") + "\n")
	case state.Err != nil:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).
			Render("Could not load bookings: "+state.Err.Error()) + "\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("ctrl+r retry · esc back") + "\n")
	case len(state.Bookings) == 0:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).
			Render("You have no bookings yet. Press F1 to search for trains.") + "\n")
	default:
		fmt.Fprintf(&body, "%s\n\n",
			lipgloss.NewStyle().Foreground(theme.FaintText).Render(fmt.Sprintf(
				"%d bookings · %d seats total", len(state.Bookings), state.TotalSeats())))
		for index, booking := range state.Bookings {
			body.WriteString(model.renderBookingRow(booking, index == state.Cursor))
		}
		body.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("enter view details · ctrl+r refresh · esc back") + "\n")
	}

	return body.String()
}

// renderBookingRow draws one history entry.
func (model *Model) renderBookingRow(booking api.Booking, selected bool) string {
	theme := model.theme

	seats := make([]string, len(booking.SeatNumbers))
	for index, seat := range booking.SeatNumbers {
		seats[index] = strconv.Itoa(seat)
	}
	line := fmt.Sprintf("  booking #%d  %s  seats %s  %s to %s",
		booking.BookingID, booking.TrainName, strings.Join(seats, ","),
		booking.ArrivalTimeAtSource, booking.ArrivalTimeAtDestination)

	if selected {
		return lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Render(line) + "\n"
	}
	return lipgloss.NewStyle().Foreground(theme.NormalText).Render(line) + "\n"
}
