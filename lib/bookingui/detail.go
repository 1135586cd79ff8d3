// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/railbook-project/railbook/lib/api"
	"github.com/railbook-project/railbook/lib/ticket"
)

// DetailState holds the confirmation page: one booking, fetched fresh
// from the service so the page always shows authoritative seat numbers
// rather than whatever the booking response carried.
type DetailState struct {
	BookingID int64
	Loading   bool
	Err       error
	Booking   api.Booking

	// FromBooking is true when the page was reached by completing a
	// booking (shows the celebration header) rather than from history.
	FromBooking bool
}

// downloadTicket saves the booking's e-ticket to the download
// directory and reports the path written.
func downloadTicket(directory string, booking api.Booking) tea.Cmd {
	return func() tea.Msg {
		path, err := ticket.WriteFile(directory, booking)
		if err != nil {
			return ticketActionMsg{err: err}
		}
		return ticketActionMsg{detail: "ticket saved to " + path}
	}
}

// printTicket pipes the rendered ticket to lpr. The spooler owns the
// job after that; failure to reach it is reported as a notice.
func printTicket(booking api.Booking) tea.Cmd {
	return func() tea.Msg {
		command := exec.Command("lpr", "-T", ticket.Filename(booking))
		command.Stdin = strings.NewReader(ticket.RenderText(booking))
		if err := command.Run(); err != nil {
			return ticketActionMsg{err: fmt.Errorf("sending ticket to printer: %w", err)}
		}
		return ticketActionMsg{detail: "ticket sent to printer"}
	}
}

// viewDetail renders the booking confirmation page.
func (model *Model) viewDetail() string {
	state := &model.detail
	theme := model.theme

	var body strings.Builder
	if state.FromBooking {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.SuccessText).Bold(true).
			Render("Booking Confirmed!") + "\n\n")
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
			Render("Booking Details") + "\n\n")
	}

	switch {
	case state.Loading:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
			Render("Loading booking…") + "\n")
	case state.Err != nil:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).
			Render("Could not load booking: "+state.Err.Error()) + "\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("ctrl+r retry · esc back") + "\n")
	default:
		booking := state.Booking
		label := lipgloss.NewStyle().Foreground(theme.FaintText)
		value := lipgloss.NewStyle().Foreground(theme.NormalText)

		fmt.Fprintf(&body, "  %s %s\n", label.Render("Booking ID:"),
			value.Render(strconv.FormatInt(booking.BookingID, 10)))
		fmt.Fprintf(&body, "  %s %s\n", label.Render("Train:     "),
			value.Render(booking.TrainName))
		fmt.Fprintf(&body, "  %s %s to %s\n", label.Render("Journey:   "),
			value.Render(booking.ArrivalTimeAtSource), value.Render(booking.ArrivalTimeAtDestination))

		body.WriteString("  " + label.Render("Seats:     "))
		badge := lipgloss.NewStyle().
			Background(theme.SeatBadgeBackground).
			Foreground(theme.SeatBadgeForeground)
		for _, seat := range booking.SeatNumbers {
			body.WriteString(" " + badge.Render(" "+strconv.Itoa(seat)+" "))
		}
		body.WriteString("\n\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("  d download ticket · p print · esc back") + "\n")
	}

	return body.String()
}
