// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/railbook-project/railbook/lib/api"
	"github.com/railbook-project/railbook/lib/session"
)

// page identifies which screen the model is showing.
type page int

const (
	pageSearch page = iota
	pageBooking
	pageDetail
	pageHistory
	pageAdmin
	pageLogin
)

// Config configures the booking UI.
type Config struct {
	// Client is the railway API client. Required.
	Client *api.Client

	// Sessions is the persisted login state. Required.
	Sessions *session.Store

	// DownloadDir is where downloaded tickets are written. Empty means
	// the current working directory.
	DownloadDir string

	// Logger receives debug events. nil disables logging.
	Logger *slog.Logger
}

// Model is the top-level bubbletea model: a page machine over search,
// booking, confirmation, history, admin, and login screens.
//
// Each page owns a context that is cancelled when the user navigates
// away, and every fetch is stamped with a generation counter captured
// at dispatch. A result whose generation does not match the current
// one belongs to an abandoned page and is dropped.
type Model struct {
	client      *api.Client
	sessions    *session.Store
	downloadDir string
	logger      *slog.Logger

	theme Theme
	keys  KeyMap

	page       page
	generation int
	pageCtx    context.Context
	cancelPage context.CancelFunc

	search  SearchForm
	booking BookingForm
	detail  DetailState
	history HistoryState
	admin   AdminState
	login   LoginForm

	// loginReturn is where a successful login navigates back to.
	// pendingBook carries the train selected before the login detour.
	loginReturn page
	pendingBook *api.Train

	// detailReturn is where esc from the detail page goes: history when
	// the booking was opened from the list, search after a fresh booking.
	detailReturn page

	notice    string
	noticeErr bool

	width  int
	height int
}

// NewModel creates the booking UI model.
func NewModel(config Config) (*Model, error) {
	if config.Client == nil {
		return nil, fmt.Errorf("bookingui: Client is required")
	}
	if config.Sessions == nil {
		return nil, fmt.Errorf("bookingui: Sessions is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		client:      config.Client,
		sessions:    config.Sessions,
		downloadDir: config.DownloadDir,
		logger:      logger,
		theme:       DefaultTheme,
		keys:        DefaultKeyMap,
		page:        pageSearch,
		pageCtx:     ctx,
		cancelPage:  cancel,
		search:      SearchForm{},
	}, nil
}

// Init implements tea.Model. The search page needs no initial fetch.
func (model *Model) Init() tea.Cmd { return nil }

// resetPageContext cancels the previous page's in-flight work and
// returns a fresh context plus the generation that results must carry
// to be accepted.
func (model *Model) resetPageContext() (context.Context, int) {
	model.cancelPage()
	model.generation++
	model.pageCtx, model.cancelPage = context.WithCancel(context.Background())
	return model.pageCtx, model.generation
}

// gotoPage switches the visible page, cancelling the old page's
// fetches and clearing any transient notice.
func (model *Model) gotoPage(next page) {
	model.resetPageContext()
	model.page = next
	model.notice = ""
	model.noticeErr = false
}

// setNotice replaces the status line.
func (model *Model) setNotice(text string, isError bool) {
	model.notice = text
	model.noticeErr = isError
}

// Update implements tea.Model.
func (model *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width, model.height = msg.Width, msg.Height
		return model, nil

	case tea.KeyMsg:
		return model.updateKey(msg)

	case searchResultMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.search.Searching = false
		if msg.err != nil {
			// A failed query is not "no results": leave Searched alone so
			// the empty-state copy does not appear under the error notice.
			model.search.Results = nil
			model.setNotice("Search failed: "+msg.err.Error(), true)
			return model, nil
		}
		model.search.Searched = true
		model.search.Results = msg.trains
		model.search.Cursor = 0
		if len(msg.trains) > 0 {
			model.search.Focus = fieldResults
		}
		return model, nil

	case bookResultMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.booking.Pending = false
		if msg.err != nil {
			model.setNotice("Booking failed: "+msg.err.Error(), true)
			return model, nil
		}
		model.detailReturn = pageSearch
		return model, model.openDetail(msg.receipt.BookingID, true)

	case bookingFetchedMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.detail.Loading = false
		model.detail.Err = msg.err
		if msg.err == nil {
			model.detail.Booking = msg.booking
		}
		return model, nil

	case bookingsListMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.history.Loading = false
		model.history.Err = msg.err
		if msg.err == nil {
			model.history.Bookings = msg.bookings
			if model.history.Cursor >= len(msg.bookings) {
				model.history.Cursor = 0
			}
		}
		return model, nil

	case adminListMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.admin.Loading = false
		model.admin.Err = msg.err
		if msg.err == nil {
			model.admin.Trains = msg.trains
			model.admin.ClampCursor()
		}
		return model, nil

	case adminMutationMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.admin.Pending = false
		if msg.err != nil {
			model.setNotice(msg.err.Error(), true)
			return model, nil
		}
		model.setNotice(msg.detail, false)
		model.admin.Mode = adminList
		return model, model.fetchInventory()

	case loginResultMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.login.Pending = false
		if msg.err != nil {
			model.setNotice("Sign in failed: "+msg.err.Error(), true)
			return model, nil
		}
		return model.finishLogin(msg.result)

	case ticketActionMsg:
		if msg.err != nil {
			model.setNotice(msg.err.Error(), true)
		} else {
			model.setNotice(msg.detail, false)
		}
		return model, nil
	}

	return model, nil
}

// updateKey routes a key press: global bindings first, then the
// current page's handler.
func (model *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		model.cancelPage()
		return model, tea.Quit

	case key.Matches(msg, model.keys.Search):
		model.gotoPage(pageSearch)
		return model, nil

	case key.Matches(msg, model.keys.MyBookings):
		return model.openHistory()

	case key.Matches(msg, model.keys.Admin):
		return model.openAdmin()
	}

	switch model.page {
	case pageSearch:
		return model.updateSearch(msg)
	case pageBooking:
		return model.updateBooking(msg)
	case pageDetail:
		return model.updateDetail(msg)
	case pageHistory:
		return model.updateHistory(msg)
	case pageAdmin:
		return model.updateAdmin(msg)
	case pageLogin:
		return model.updateLogin(msg)
	}
	return model, nil
}

// --- search page -----------------------------------------------------

func (model *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &model.search

	if dropdown := form.ActiveDropdown(); dropdown != nil && dropdown.Open {
		switch {
		case key.Matches(msg, model.keys.Up):
			dropdown.MoveUp()
			return model, nil
		case key.Matches(msg, model.keys.Down):
			dropdown.MoveDown()
			return model, nil
		case key.Matches(msg, model.keys.Submit):
			form.PickSuggestion()
			return model, nil
		case key.Matches(msg, model.keys.Back):
			dropdown.Close()
			return model, nil
		}
	}

	switch {
	case key.Matches(msg, model.keys.Tab):
		form.FocusNext()
		return model, nil

	case key.Matches(msg, model.keys.Swap):
		form.Swap()
		return model, nil

	case key.Matches(msg, model.keys.Up):
		if form.Focus == fieldResults && form.Cursor > 0 {
			form.Cursor--
		}
		return model, nil

	case key.Matches(msg, model.keys.Down):
		if form.Focus == fieldResults && form.Cursor < len(form.Results)-1 {
			form.Cursor++
		}
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		if train := form.SelectedTrain(); train != nil {
			return model.openBooking(*train)
		}
		if form.Searching {
			return model, nil
		}
		if err := form.Validate(); err != nil {
			model.setNotice(err.Error(), true)
			return model, nil
		}
		return model, model.fetchAvailability()

	case msg.Type == tea.KeyBackspace:
		form.HandleBackspace()
		return model, nil

	case msg.Type == tea.KeySpace:
		form.HandleRune(' ')
		return model, nil

	case msg.Type == tea.KeyRunes:
		for _, character := range msg.Runes {
			form.HandleRune(character)
		}
		return model, nil
	}
	return model, nil
}

// fetchAvailability dispatches the availability query for the current
// form values.
func (model *Model) fetchAvailability() tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.search.Searching = true
	model.notice = ""
	source := strings.TrimSpace(model.search.Source)
	destination := strings.TrimSpace(model.search.Destination)

	client := model.client
	return func() tea.Msg {
		trains, err := client.Availability(ctx, source, destination)
		return searchResultMsg{generation: generation, trains: trains, err: err}
	}
}

// --- booking page ----------------------------------------------------

// openBooking navigates to the booking page for a train, detouring
// through login when no session token is stored.
func (model *Model) openBooking(train api.Train) (tea.Model, tea.Cmd) {
	if !model.sessions.LoggedIn() {
		model.pendingBook = &train
		model.loginReturn = pageSearch
		model.login = LoginForm{}
		model.gotoPage(pageLogin)
		model.setNotice("Please sign in to book tickets.", false)
		return model, nil
	}
	model.booking = newBookingForm(train.TrainID, train.TrainName)
	model.gotoPage(pageBooking)
	return model, nil
}

func (model *Model) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &model.booking

	switch {
	case key.Matches(msg, model.keys.Back):
		model.gotoPage(pageSearch)
		return model, nil

	case key.Matches(msg, model.keys.Up):
		form.Increment()
		return model, nil

	case key.Matches(msg, model.keys.Down):
		form.Decrement()
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		if form.Pending {
			return model, nil
		}
		return model, model.submitBooking()

	case msg.Type == tea.KeyRunes:
		for _, character := range msg.Runes {
			if character >= '0' && character <= '9' {
				form.SetSeatsFromText(string(character))
			}
		}
		return model, nil
	}
	return model, nil
}

// submitBooking dispatches the booking request.
func (model *Model) submitBooking() tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.booking.Pending = true
	model.notice = ""

	client := model.client
	trainID := model.booking.TrainID
	seats := model.booking.Seats
	return func() tea.Msg {
		receipt, err := client.BookSeats(ctx, trainID, seats)
		return bookResultMsg{generation: generation, receipt: receipt, err: err}
	}
}

// --- detail page -----------------------------------------------------

// openDetail navigates to the confirmation page and fetches the
// booking fresh from the service.
func (model *Model) openDetail(bookingID int64, fromBooking bool) tea.Cmd {
	model.gotoPage(pageDetail)
	model.detail = DetailState{BookingID: bookingID, Loading: true, FromBooking: fromBooking}
	return model.fetchDetail()
}

// fetchDetail dispatches the booking fetch for the detail page.
func (model *Model) fetchDetail() tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.detail.Loading = true
	model.detail.Err = nil

	client := model.client
	bookingID := model.detail.BookingID
	return func() tea.Msg {
		booking, err := client.GetBooking(ctx, bookingID)
		return bookingFetchedMsg{generation: generation, booking: booking, err: err}
	}
}

func (model *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.detail

	switch {
	case key.Matches(msg, model.keys.Back):
		if model.detailReturn == pageHistory {
			return model.openHistory()
		}
		model.gotoPage(pageSearch)
		return model, nil

	case key.Matches(msg, model.keys.Refresh):
		return model, model.fetchDetail()

	case key.Matches(msg, model.keys.Download):
		if state.Loading || state.Err != nil {
			return model, nil
		}
		return model, downloadTicket(model.downloadDir, state.Booking)

	case key.Matches(msg, model.keys.Print):
		if state.Loading || state.Err != nil {
			return model, nil
		}
		return model, printTicket(state.Booking)
	}
	return model, nil
}

// --- history page ----------------------------------------------------

// openHistory navigates to the booking history, detouring through
// login when no session token is stored.
func (model *Model) openHistory() (tea.Model, tea.Cmd) {
	if !model.sessions.LoggedIn() {
		model.pendingBook = nil
		model.loginReturn = pageHistory
		model.login = LoginForm{}
		model.gotoPage(pageLogin)
		model.setNotice("Please sign in to view your bookings.", false)
		return model, nil
	}
	model.gotoPage(pageHistory)
	model.history = HistoryState{Loading: true}
	return model, model.fetchHistory()
}

// fetchHistory dispatches the booking history fetch.
func (model *Model) fetchHistory() tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.history.Loading = true
	model.history.Err = nil

	client := model.client
	return func() tea.Msg {
		bookings, err := client.MyBookings(ctx)
		return bookingsListMsg{generation: generation, bookings: bookings, err: err}
	}
}

func (model *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.history

	switch {
	case key.Matches(msg, model.keys.Back):
		model.gotoPage(pageSearch)
		return model, nil

	case key.Matches(msg, model.keys.Refresh):
		return model, model.fetchHistory()

	case key.Matches(msg, model.keys.Up):
		state.MoveUp()
		return model, nil

	case key.Matches(msg, model.keys.Down):
		state.MoveDown()
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		if booking := state.Selected(); booking != nil {
			model.detailReturn = pageHistory
			return model, model.openDetail(booking.BookingID, false)
		}
		return model, nil
	}
	return model, nil
}

// --- admin page ------------------------------------------------------

// openAdmin navigates to the inventory page. The page is only offered
// to sessions with the admin role; the server enforces the admin key
// on every request regardless.
func (model *Model) openAdmin() (tea.Model, tea.Cmd) {
	if model.sessions.Role() != "admin" {
		model.setNotice("Admin access required.", true)
		return model, nil
	}
	model.gotoPage(pageAdmin)
	model.admin = AdminState{Loading: true}
	return model, model.fetchInventory()
}

// fetchInventory dispatches the full inventory fetch.
func (model *Model) fetchInventory() tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.admin.Loading = true
	model.admin.Err = nil

	client := model.client
	return func() tea.Msg {
		trains, err := client.ListAllTrains(ctx)
		return adminListMsg{generation: generation, trains: trains, err: err}
	}
}

func (model *Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.admin

	switch state.Mode {
	case adminAdd:
		return model.updateAdminDraft(msg)
	case adminConfirmDelete:
		return model.updateAdminConfirmDelete(msg)
	case adminEditSeats:
		return model.updateAdminEditSeats(msg)
	case adminFilter:
		return model.updateAdminFilter(msg)
	}

	switch {
	case key.Matches(msg, model.keys.Back):
		model.gotoPage(pageSearch)
		return model, nil

	case key.Matches(msg, model.keys.Refresh):
		return model, model.fetchInventory()

	case key.Matches(msg, model.keys.Up):
		state.MoveUp()
		return model, nil

	case key.Matches(msg, model.keys.Down):
		state.MoveDown()
		return model, nil

	case key.Matches(msg, model.keys.AddTrain):
		state.resetDraft()
		state.Mode = adminAdd
		return model, nil

	case key.Matches(msg, model.keys.Delete):
		if state.Selected() != nil {
			state.Mode = adminConfirmDelete
		}
		return model, nil

	case key.Matches(msg, model.keys.EditSeat):
		if state.Selected() != nil {
			state.SeatInput = ""
			state.Mode = adminEditSeats
		}
		return model, nil

	case key.Matches(msg, model.keys.Filter):
		state.Mode = adminFilter
		return model, nil
	}
	return model, nil
}

func (model *Model) updateAdminDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.admin

	switch {
	case key.Matches(msg, model.keys.Back):
		state.Mode = adminList
		return model, nil

	case key.Matches(msg, model.keys.Tab):
		state.DraftFocus = (state.DraftFocus + 1) % draftFieldCount
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		if state.Pending {
			return model, nil
		}
		draft, err := state.DraftTrain()
		if err != nil {
			model.setNotice(err.Error(), true)
			return model, nil
		}
		return model, model.createTrain(draft)

	case msg.Type == tea.KeyBackspace:
		state.Draft[state.DraftFocus] = trimLastRune(state.Draft[state.DraftFocus])
		return model, nil

	case msg.Type == tea.KeySpace:
		state.Draft[state.DraftFocus] += " "
		return model, nil

	case msg.Type == tea.KeyRunes:
		state.Draft[state.DraftFocus] += string(msg.Runes)
		return model, nil
	}
	return model, nil
}

func (model *Model) updateAdminConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.admin

	switch {
	case key.Matches(msg, model.keys.Back):
		state.Mode = adminList
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		train := state.Selected()
		if train == nil || state.Pending {
			state.Mode = adminList
			return model, nil
		}
		return model, model.deleteTrain(*train)
	}
	return model, nil
}

func (model *Model) updateAdminEditSeats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.admin

	switch {
	case key.Matches(msg, model.keys.Back):
		state.Mode = adminList
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		train := state.Selected()
		if train == nil || state.Pending {
			state.Mode = adminList
			return model, nil
		}
		capacity, err := state.ParseSeatInput()
		if err != nil {
			model.setNotice(err.Error(), true)
			return model, nil
		}
		return model, model.updateSeats(*train, capacity)

	case msg.Type == tea.KeyBackspace:
		state.SeatInput = trimLastRune(state.SeatInput)
		return model, nil

	case msg.Type == tea.KeyRunes:
		for _, character := range msg.Runes {
			if character >= '0' && character <= '9' {
				state.SeatInput += string(character)
			}
		}
		return model, nil
	}
	return model, nil
}

func (model *Model) updateAdminFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.admin

	switch {
	case key.Matches(msg, model.keys.Back):
		state.Filter = ""
		state.Mode = adminList
		state.ClampCursor()
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		state.Mode = adminList
		state.ClampCursor()
		return model, nil

	case msg.Type == tea.KeyBackspace:
		state.Filter = trimLastRune(state.Filter)
		state.ClampCursor()
		return model, nil

	case msg.Type == tea.KeySpace:
		state.Filter += " "
		state.ClampCursor()
		return model, nil

	case msg.Type == tea.KeyRunes:
		state.Filter += string(msg.Runes)
		state.ClampCursor()
		return model, nil
	}
	return model, nil
}

// createTrain dispatches an inventory creation.
func (model *Model) createTrain(draft api.TrainDraft) tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.admin.Pending = true

	client := model.client
	return func() tea.Msg {
		trainID, err := client.CreateTrain(ctx, draft)
		if err != nil {
			return adminMutationMsg{generation: generation, err: err}
		}
		return adminMutationMsg{generation: generation,
			detail: fmt.Sprintf("Train %q created with id %d.", draft.TrainName, trainID)}
	}
}

// deleteTrain dispatches an inventory deletion. The confirmation step
// has already happened; this issues the request.
func (model *Model) deleteTrain(train api.Train) tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.admin.Pending = true

	client := model.client
	return func() tea.Msg {
		if err := client.DeleteTrain(ctx, train.TrainID); err != nil {
			return adminMutationMsg{generation: generation, err: err}
		}
		return adminMutationMsg{generation: generation,
			detail: fmt.Sprintf("Train %q deleted.", train.TrainName)}
	}
}

// updateSeats dispatches a capacity change.
func (model *Model) updateSeats(train api.Train, capacity int) tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.admin.Pending = true

	client := model.client
	return func() tea.Msg {
		newCapacity, err := client.UpdateSeatCapacity(ctx, train.TrainID, capacity)
		if err != nil {
			return adminMutationMsg{generation: generation, err: err}
		}
		return adminMutationMsg{generation: generation,
			detail: fmt.Sprintf("Train %q capacity is now %d.", train.TrainName, newCapacity)}
	}
}

// --- login page ------------------------------------------------------

func (model *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &model.login

	switch {
	case key.Matches(msg, model.keys.Back):
		model.pendingBook = nil
		model.gotoPage(pageSearch)
		return model, nil

	case key.Matches(msg, model.keys.Tab):
		form.FocusNext()
		return model, nil

	case key.Matches(msg, model.keys.Submit):
		if form.Pending {
			return model, nil
		}
		if err := form.Validate(); err != nil {
			model.setNotice(err.Error(), true)
			return model, nil
		}
		return model, model.submitLogin()

	case msg.Type == tea.KeyBackspace:
		form.HandleBackspace()
		return model, nil

	case msg.Type == tea.KeySpace:
		form.HandleRune(' ')
		return model, nil

	case msg.Type == tea.KeyRunes:
		for _, character := range msg.Runes {
			form.HandleRune(character)
		}
		return model, nil
	}
	return model, nil
}

// submitLogin dispatches the login request.
func (model *Model) submitLogin() tea.Cmd {
	ctx, generation := model.resetPageContext()
	model.login.Pending = true
	model.notice = ""

	client := model.client
	username := strings.TrimSpace(model.login.Username)
	password := model.login.Password
	return func() tea.Msg {
		result, err := client.Login(ctx, username, password)
		return loginResultMsg{generation: generation, result: result, err: err}
	}
}

// finishLogin persists the session and resumes the interrupted action.
func (model *Model) finishLogin(result api.LoginResult) (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(model.login.Username)
	model.login = LoginForm{}

	if err := model.sessions.Save(session.Session{Token: result.Access, Role: result.Role}); err != nil {
		model.setNotice("Could not save session: "+err.Error(), true)
		return model, nil
	}

	if train := model.pendingBook; train != nil {
		model.pendingBook = nil
		model.booking = newBookingForm(train.TrainID, train.TrainName)
		model.gotoPage(pageBooking)
		model.setNotice("Signed in as "+username+".", false)
		return model, nil
	}

	switch model.loginReturn {
	case pageHistory:
		teaModel, cmd := model.openHistory()
		model.setNotice("Signed in as "+username+".", false)
		return teaModel, cmd
	default:
		model.gotoPage(pageSearch)
		model.setNotice("Signed in as "+username+".", false)
		return model, nil
	}
}

// --- view ------------------------------------------------------------

// View implements tea.Model.
func (model *Model) View() string {
	theme := model.theme

	title := lipgloss.NewStyle().Foreground(theme.AccentText).Bold(true).Render("Railbook")
	account := "not signed in"
	if model.sessions.LoggedIn() {
		account = "signed in"
		if role := model.sessions.Role(); role != "" {
			account += " (" + role + ")"
		}
	}
	header := title + lipgloss.NewStyle().Foreground(theme.FaintText).
		Render("  ·  "+account+"  ·  F1 search · F2 my bookings · F3 admin")

	var body string
	switch model.page {
	case pageSearch:
		body = model.viewSearch()
	case pageBooking:
		body = model.viewBooking()
	case pageDetail:
		body = model.viewDetail()
	case pageHistory:
		body = model.viewHistory()
	case pageAdmin:
		body = model.viewAdmin()
	case pageLogin:
		body = model.viewLogin()
	}

	view := header + "\n" +
		lipgloss.NewStyle().Foreground(theme.BorderColor).
			Render(strings.Repeat("─", headerRuleWidth(model.width))) + "\n\n" +
		body

	if model.notice != "" {
		style := lipgloss.NewStyle().Foreground(theme.SuccessText)
		if model.noticeErr {
			style = lipgloss.NewStyle().Foreground(theme.ErrorText)
		}
		view += "\n" + style.Render(model.notice) + "\n"
	}
	return view
}

// headerRuleWidth bounds the divider so it never wraps.
func headerRuleWidth(width int) int {
	if width <= 0 {
		return 60
	}
	if width > 100 {
		return 100
	}
	return width
}
