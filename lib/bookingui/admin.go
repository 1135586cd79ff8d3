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

// adminMode identifies which interaction the admin page is in.
type adminMode int

const (
	adminList adminMode = iota
	adminFilter
	adminAdd
	adminConfirmDelete
	adminEditSeats
)

// Fields of the add-train draft form, in focus order.
const (
	draftName = iota
	draftSource
	draftDestination
	draftCapacity
	draftDeparts
	draftArrives
	draftFieldCount
)

var draftLabels = [draftFieldCount]string{
	"Train name ",
	"Source     ",
	"Destination",
	"Capacity   ",
	"Departs    ",
	"Arrives    ",
}

// AdminState holds the train inventory page. Every mutation refetches
// the full list rather than patching it locally, so concurrent changes
// from other admins become visible immediately.
type AdminState struct {
	Loading bool
	Err     error
	Trains  []api.Train
	Cursor  int

	// Filter narrows the visible list by substring match on train name.
	// It is purely client-side.
	Filter string

	Mode    adminMode
	Pending bool

	// Draft holds the add-train form values, indexed by the draft field
	// constants.
	Draft      [draftFieldCount]string
	DraftFocus int

	// SeatInput is the typed value for the capacity edit prompt.
	SeatInput string
}

// Visible returns the trains matching the current filter.
func (state *AdminState) Visible() []api.Train {
	if state.Filter == "" {
		return state.Trains
	}
	needle := strings.ToLower(state.Filter)
	var visible []api.Train
	for _, train := range state.Trains {
		if strings.Contains(strings.ToLower(train.TrainName), needle) {
			visible = append(visible, train)
		}
	}
	return visible
}

// Selected returns the train under the cursor within the filtered
// view, or nil.
func (state *AdminState) Selected() *api.Train {
	visible := state.Visible()
	if state.Cursor >= len(visible) {
		return nil
	}
	return &visible[state.Cursor]
}

// MoveUp moves the cursor up, stopping at the top.
func (state *AdminState) MoveUp() {
	if state.Cursor > 0 {
		state.Cursor--
	}
}

// MoveDown moves the cursor down within the filtered view.
func (state *AdminState) MoveDown() {
	if state.Cursor < len(state.Visible())-1 {
		state.Cursor++
	}
}

// ClampCursor pulls the cursor back into the filtered view after the
// list or the filter changed underneath it.
func (state *AdminState) ClampCursor() {
	if visible := len(state.Visible()); state.Cursor >= visible {
		state.Cursor = 0
	}
}

// resetDraft clears the add-train form.
func (state *AdminState) resetDraft() {
	state.Draft = [draftFieldCount]string{}
	state.DraftFocus = 0
}

// DraftTrain validates the add-train form and converts it into a
// creation payload. Capacity must be a positive integer; the station
// and name fields must be non-empty.
func (state *AdminState) DraftTrain() (api.TrainDraft, error) {
	var draft api.TrainDraft
	for field := draftName; field <= draftDestination; field++ {
		if strings.TrimSpace(state.Draft[field]) == "" {
			return draft, fmt.Errorf("%s is required", strings.TrimSpace(strings.ToLower(draftLabels[field])))
		}
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(state.Draft[draftCapacity]))
	if err != nil || capacity <= 0 {
		return draft, fmt.Errorf("capacity must be a positive number")
	}

	draft.TrainName = strings.TrimSpace(state.Draft[draftName])
	draft.Source = strings.TrimSpace(state.Draft[draftSource])
	draft.Destination = strings.TrimSpace(state.Draft[draftDestination])
	draft.SeatCapacity = capacity
	draft.ArrivalTimeAtSource = strings.TrimSpace(state.Draft[draftDeparts])
	draft.ArrivalTimeAtDestination = strings.TrimSpace(state.Draft[draftArrives])
	return draft, nil
}

// ParseSeatInput validates the capacity edit prompt. The new capacity
// must be a positive integer.
func (state *AdminState) ParseSeatInput() (int, error) {
	capacity, err := strconv.Atoi(strings.TrimSpace(state.SeatInput))
	if err != nil || capacity <= 0 {
		return 0, fmt.Errorf("seat capacity must be a positive number")
	}
	return capacity, nil
}

// viewAdmin renders the admin inventory page.
func (model *Model) viewAdmin() string {
	state := &model.admin
	theme := model.theme

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
		Render("Train Inventory") + "\n\n")

	if state.Mode == adminAdd {
		model.renderAdminDraft(&body)
		return body.String()
	}

	switch {
	case state.Loading:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
			Render("Loading inventory…") + "\n")
	case state.Err != nil:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).
			Render("Could not load inventory: "+state.Err.Error()) + "\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("ctrl+r retry · esc back") + "\n")
	default:
		model.renderAdminList(&body)
	}

	return body.String()
}

// renderAdminList draws the filtered inventory table and the contextual
// prompt for the active mode.
func (model *Model) renderAdminList(body *strings.Builder) {
	state := &model.admin
	theme := model.theme

	if state.Mode == adminFilter || state.Filter != "" {
		marker := "  "
		if state.Mode == adminFilter {
			marker = lipgloss.NewStyle().Foreground(theme.AccentText).Render("> ")
		}
		body.WriteString(marker + lipgloss.NewStyle().Foreground(theme.FaintText).Render("Filter: ") +
			lipgloss.NewStyle().Foreground(theme.NormalText).Render(state.Filter) + "\n\n")
	}

	visible := state.Visible()
	if len(visible) == 0 {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).
			Render("  No trains match.") + "\n")
	}
	for index, train := range visible {
		line := fmt.Sprintf("  #%-4d %-24s %s → %s  %d/%d seats free",
			train.TrainID, train.TrainName, train.Source, train.Destination,
			train.AvailableSeats, train.SeatCapacity)
		if index == state.Cursor && state.Mode != adminFilter {
			body.WriteString(lipgloss.NewStyle().
				Background(theme.SelectedBackground).
				Foreground(theme.SelectedForeground).
				Render(line) + "\n")
		} else {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.NormalText).Render(line) + "\n")
		}
	}
	body.WriteString("\n")

	switch state.Mode {
	case adminConfirmDelete:
		if train := state.Selected(); train != nil {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Bold(true).
				Render(fmt.Sprintf("  Delete train #%d %q? enter confirm · esc cancel",
					train.TrainID, train.TrainName)) + "\n")
		}
	case adminEditSeats:
		if train := state.Selected(); train != nil {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
				Render(fmt.Sprintf("  New seat capacity for #%d: %s▎  enter apply · esc cancel",
					train.TrainID, state.SeatInput)) + "\n")
		}
	case adminFilter:
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("  type to filter · enter done · esc clear") + "\n")
	default:
		if state.Pending {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
				Render("  Applying…") + "\n")
		} else {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
				Render("  a add · x delete · e edit capacity · / filter · ctrl+r refresh · esc back") + "\n")
		}
	}
}

// renderAdminDraft draws the add-train form.
func (model *Model) renderAdminDraft(body *strings.Builder) {
	state := &model.admin
	theme := model.theme

	body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).Bold(true).
		Render("  Add Train") + "\n\n")
	for field := 0; field < draftFieldCount; field++ {
		marker := "  "
		cursor := ""
		if field == state.DraftFocus {
			marker = lipgloss.NewStyle().Foreground(theme.AccentText).Render("> ")
			cursor = lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Render("▎")
		}
		body.WriteString(marker +
			lipgloss.NewStyle().Foreground(theme.FaintText).Render(draftLabels[field]+": ") +
			lipgloss.NewStyle().Foreground(theme.NormalText).Render(state.Draft[field]) + cursor + "\n")
	}
	body.WriteString("\n")
	if state.Pending {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
			Render("  Creating…") + "\n")
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("  tab next field · enter create · esc cancel") + "\n")
	}
}
