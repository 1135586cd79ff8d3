// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared across pages. Page-specific
// handling (text entry, digit input) is done on raw key messages; these
// bindings cover navigation and actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Tab     key.Binding
	Swap    key.Binding
	Submit  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Refresh key.Binding

	Search     key.Binding
	MyBookings key.Binding
	Admin      key.Binding

	Download key.Binding
	Print    key.Binding
	Delete   key.Binding
	EditSeat key.Binding
	AddTrain key.Binding
	Filter   key.Binding
}

// DefaultKeyMap is the standard binding set.
var DefaultKeyMap = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Swap:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap stations")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),

	Search:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "search")),
	MyBookings: key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "my bookings")),
	Admin:      key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "admin")),

	Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download ticket")),
	Print:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print ticket")),
	Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete train")),
	EditSeat: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit capacity")),
	AddTrain: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add train")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
}
