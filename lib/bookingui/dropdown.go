// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dropdown is the station suggestion list rendered under a search
// input. It captures up/down/enter while open; the owning form opens
// it when its field gains focus with text and closes it on selection
// or when focus leaves the field.
type Dropdown struct {
	Options []string
	Cursor  int
	Open    bool
}

// SetOptions replaces the option list, clamping the cursor into the
// new bounds. An empty list keeps the dropdown renderable with a
// "no stations found" row, matching the web client.
func (dropdown *Dropdown) SetOptions(options []string) {
	dropdown.Options = options
	if dropdown.Cursor >= len(options) {
		dropdown.Cursor = 0
	}
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *Dropdown) MoveUp() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *Dropdown) MoveDown() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the highlighted option, or "" when the list is
// empty.
func (dropdown *Dropdown) Selected() string {
	if len(dropdown.Options) == 0 {
		return ""
	}
	return dropdown.Options[dropdown.Cursor]
}

// Close hides the dropdown and resets the cursor.
func (dropdown *Dropdown) Close() {
	dropdown.Open = false
	dropdown.Cursor = 0
}

// Render produces the dropdown lines. Each line has the same visible
// width and a solid background for separation from the page beneath.
func (dropdown *Dropdown) Render(theme Theme) []string {
	labels := dropdown.Options
	if len(labels) == 0 {
		labels = []string{"no stations found"}
	}

	maxLabelWidth := 0
	for _, label := range labels {
		if width := ansi.StringWidth(label); width > maxLabelWidth {
			maxLabelWidth = width
		}
	}
	innerWidth := maxLabelWidth + 3 // marker + space prefix, padded label.

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.DropdownBackground).
		Foreground(theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
	emptyStyle := lipgloss.NewStyle().
		Background(theme.DropdownBackground).
		Foreground(theme.FaintText)

	var lines []string
	for index, label := range labels {
		marker := " "
		if len(dropdown.Options) > 0 && index == dropdown.Cursor {
			marker = ">"
		}
		content := marker + " " + label
		if pad := innerWidth - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}

		style := backgroundStyle
		switch {
		case len(dropdown.Options) == 0:
			style = emptyStyle
		case index == dropdown.Cursor:
			style = selectedStyle
		}
		lines = append(lines, style.Render(" "+content+" "))
	}
	return lines
}
