// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the booking TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Notices.
	ErrorText   lipgloss.Color
	SuccessText lipgloss.Color
	AccentText  lipgloss.Color

	// Suggestion dropdown.
	DropdownBackground lipgloss.Color

	// Seat badges on the confirmation page.
	SeatBadgeBackground lipgloss.Color
	SeatBadgeForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ErrorText:   lipgloss.Color("196"), // red
	SuccessText: lipgloss.Color("114"), // green
	AccentText:  lipgloss.Color("75"),  // blue

	DropdownBackground: lipgloss.Color("237"),

	SeatBadgeBackground: lipgloss.Color("22"),  // dark green
	SeatBadgeForeground: lipgloss.Color("255"), // white
}
