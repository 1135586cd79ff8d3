// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// loginField identifies which input of the login form has focus.
type loginField int

const (
	loginUsername loginField = iota
	loginPassword
)

// LoginForm holds the in-TUI login page. It appears when an action
// needs credentials and none are stored; on success the interrupted
// action's page is restored.
type LoginForm struct {
	Username string
	Password string
	Focus    loginField
	Pending  bool
}

// Validate checks that both fields are filled in.
func (form *LoginForm) Validate() error {
	if strings.TrimSpace(form.Username) == "" || strings.TrimSpace(form.Password) == "" {
		return fmt.Errorf("username and password are required")
	}
	return nil
}

// HandleRune appends a typed character to the focused field.
func (form *LoginForm) HandleRune(character rune) {
	switch form.Focus {
	case loginUsername:
		form.Username += string(character)
	case loginPassword:
		form.Password += string(character)
	}
}

// HandleBackspace removes the last character from the focused field.
func (form *LoginForm) HandleBackspace() {
	switch form.Focus {
	case loginUsername:
		form.Username = trimLastRune(form.Username)
	case loginPassword:
		form.Password = trimLastRune(form.Password)
	}
}

// FocusNext toggles between the two fields.
func (form *LoginForm) FocusNext() {
	if form.Focus == loginUsername {
		form.Focus = loginPassword
	} else {
		form.Focus = loginUsername
	}
}

// viewLogin renders the login page. The password renders as bullets.
func (model *Model) viewLogin() string {
	form := &model.login
	theme := model.theme

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
		Render("Sign In") + "\n")
	body.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).
		Render("Log in to book tickets and view your bookings") + "\n\n")

	body.WriteString(model.renderLoginInput("Username", form.Username, form.Focus == loginUsername))
	body.WriteString(model.renderLoginInput("Password",
		strings.Repeat("•", len([]rune(form.Password))), form.Focus == loginPassword))

	body.WriteString("\n")
	if form.Pending {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.AccentText).
			Render("Signing in…") + "\n")
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("tab next field · enter sign in · esc back") + "\n")
	}
	return body.String()
}

// renderLoginInput draws one labeled login line with a cursor when
// focused.
func (model *Model) renderLoginInput(label, value string, focused bool) string {
	theme := model.theme
	cursor := ""
	marker := "  "
	if focused {
		cursor = lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Render("▎")
		marker = lipgloss.NewStyle().Foreground(theme.AccentText).Render("> ")
	}
	return marker + lipgloss.NewStyle().Foreground(theme.FaintText).Render(label+": ") +
		lipgloss.NewStyle().Foreground(theme.NormalText).Render(value) + cursor + "\n"
}
