// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/railbook-project/railbook/lib/api"
	"github.com/railbook-project/railbook/lib/station"
)

// searchField identifies which input of the search form has focus.
type searchField int

const (
	fieldSource searchField = iota
	fieldDestination
	fieldResults
)

// SearchForm holds the search page state: two free-text station
// inputs with suggestion dropdowns, the availability results, and the
// in-flight flag that serializes searches.
type SearchForm struct {
	Source      string
	Destination string
	Focus       searchField

	SourceDropdown      Dropdown
	DestinationDropdown Dropdown

	// Searching is true while an availability query is in flight. The
	// search trigger is ignored while set, giving at most one pending
	// query.
	Searching bool

	// Searched is true once at least one query has completed, which is
	// what distinguishes "no results" from "not searched yet".
	Searched bool

	Results []api.Train
	Cursor  int
}

// Validate checks that both stations are filled in. Returns a
// user-facing message when the form is not searchable; search must not
// touch the network in that case.
func (form *SearchForm) Validate() error {
	if strings.TrimSpace(form.Source) == "" || strings.TrimSpace(form.Destination) == "" {
		return fmt.Errorf("please select both source and destination stations")
	}
	return nil
}

// Swap exchanges the source and destination values atomically. It
// never triggers a search; existing results are kept until the user
// searches again.
func (form *SearchForm) Swap() {
	form.Source, form.Destination = form.Destination, form.Source
	form.refreshSuggestions()
}

// HandleRune appends a typed character to the focused field and opens
// its dropdown, mirroring the web client's type-to-suggest behavior.
func (form *SearchForm) HandleRune(character rune) {
	switch form.Focus {
	case fieldSource:
		form.Source += string(character)
		form.SourceDropdown.Open = true
	case fieldDestination:
		form.Destination += string(character)
		form.DestinationDropdown.Open = true
	default:
		return
	}
	form.refreshSuggestions()
}

// HandleBackspace removes the last character from the focused field.
func (form *SearchForm) HandleBackspace() {
	switch form.Focus {
	case fieldSource:
		form.Source = trimLastRune(form.Source)
	case fieldDestination:
		form.Destination = trimLastRune(form.Destination)
	default:
		return
	}
	form.refreshSuggestions()
}

// FocusNext cycles focus between the two inputs (and the result list
// when results exist). Moving focus away from a field closes its
// dropdown — the terminal analogue of clicking outside it.
func (form *SearchForm) FocusNext() {
	switch form.Focus {
	case fieldSource:
		form.SourceDropdown.Close()
		form.Focus = fieldDestination
		form.DestinationDropdown.Open = form.Destination != ""
	case fieldDestination:
		form.DestinationDropdown.Close()
		if len(form.Results) > 0 {
			form.Focus = fieldResults
		} else {
			form.Focus = fieldSource
			form.SourceDropdown.Open = form.Source != ""
		}
	case fieldResults:
		form.Focus = fieldSource
		form.SourceDropdown.Open = form.Source != ""
	}
	form.refreshSuggestions()
}

// ActiveDropdown returns the dropdown belonging to the focused input,
// or nil when focus is on the result list.
func (form *SearchForm) ActiveDropdown() *Dropdown {
	switch form.Focus {
	case fieldSource:
		return &form.SourceDropdown
	case fieldDestination:
		return &form.DestinationDropdown
	default:
		return nil
	}
}

// PickSuggestion copies the highlighted suggestion into the focused
// field and closes the dropdown. Returns true if a pick happened.
func (form *SearchForm) PickSuggestion() bool {
	dropdown := form.ActiveDropdown()
	if dropdown == nil || !dropdown.Open {
		return false
	}
	selected := dropdown.Selected()
	if selected == "" {
		dropdown.Close()
		return false
	}
	switch form.Focus {
	case fieldSource:
		form.Source = selected
	case fieldDestination:
		form.Destination = selected
	}
	dropdown.Close()
	form.refreshSuggestions()
	return true
}

// SelectedTrain returns the train under the result cursor, or nil.
func (form *SearchForm) SelectedTrain() *api.Train {
	if form.Focus != fieldResults || form.Cursor >= len(form.Results) {
		return nil
	}
	return &form.Results[form.Cursor]
}

// refreshSuggestions recomputes both dropdowns. Each field's list
// excludes the opposite field's current exact selection, so the same
// station can never be offered as both source and destination.
func (form *SearchForm) refreshSuggestions() {
	form.SourceDropdown.SetOptions(station.Suggest(form.Source, form.Destination))
	form.DestinationDropdown.SetOptions(station.Suggest(form.Destination, form.Source))
}

// trimLastRune drops the final rune from a string.
func trimLastRune(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	return string(runes[:len(runes)-1])
}

// viewSearch renders the search page.
func (model *Model) viewSearch() string {
	form := &model.search
	theme := model.theme

	header := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
		Render("Find Your Train")
	subtitle := lipgloss.NewStyle().Foreground(theme.FaintText).
		Render("Search and book train tickets")

	var body strings.Builder
	body.WriteString(header + "\n")
	body.WriteString(subtitle + "\n\n")

	body.WriteString(model.renderStationInput("From", form.Source, form.Focus == fieldSource))
	if form.Focus == fieldSource && form.SourceDropdown.Open {
		for _, line := range form.SourceDropdown.Render(theme) {
			body.WriteString("    " + line + "\n")
		}
	}
	body.WriteString(model.renderStationInput("To  ", form.Destination, form.Focus == fieldDestination))
	if form.Focus == fieldDestination && form.DestinationDropdown.Open {
		for _, line := range form.DestinationDropdown.Render(theme) {
			body.WriteString("    " + line + "\n")
		}
	}

	body.WriteString("\n")
	if form.Searching {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).Render("Searching…") + "\n")
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("enter search · tab next field · ctrl+s swap") + "\n")
	}

	switch {
	case len(form.Results) > 0:
		body.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
			Render("Available Trains") + "\n")
		for index, train := range form.Results {
			body.WriteString(model.renderTrainRow(train, form.Focus == fieldResults && index == form.Cursor))
		}
		if form.Focus == fieldResults {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
				Render("enter book selected train") + "\n")
		}
	case form.Searched && !form.Searching:
		body.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.FaintText).
			Render("No trains found. Try different stations or check back later.") + "\n")
	}

	return body.String()
}

// renderStationInput draws one labeled input line with a cursor when
// focused.
func (model *Model) renderStationInput(label, value string, focused bool) string {
	theme := model.theme
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(theme.NormalText)

	cursor := ""
	if focused {
		cursor = lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Render("▎")
	}
	marker := "  "
	if focused {
		marker = lipgloss.NewStyle().Foreground(theme.AccentText).Render("> ")
	}
	return marker + labelStyle.Render(label+": ") + valueStyle.Render(value) + cursor + "\n"
}

// renderTrainRow draws one availability result.
func (model *Model) renderTrainRow(train api.Train, selected bool) string {
	theme := model.theme
	line := fmt.Sprintf("  #%d %s  %s → %s  %d seats available",
		train.TrainID, train.TrainName, train.Source, train.Destination, train.AvailableSeats)

	if selected {
		return lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Render(line) + "\n"
	}
	return lipgloss.NewStyle().Foreground(theme.NormalText).Render(line) + "\n"
}
