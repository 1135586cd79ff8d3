// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/railbook-project/railbook/lib/api"
	"github.com/railbook-project/railbook/lib/session"
)

// fakeRailway is an httptest-backed railway service covering the
// endpoints the TUI exercises. It records request counts per
// method+path for assertions about what the model did (and did not)
// call.
type fakeRailway struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []string
}

func newFakeRailway(t *testing.T) *fakeRailway {
	t.Helper()
	railway := &fakeRailway{}
	railway.server = httptest.NewServer(http.HandlerFunc(railway.handle))
	t.Cleanup(railway.server.Close)
	return railway
}

func (railway *fakeRailway) handle(w http.ResponseWriter, r *http.Request) {
	railway.mu.Lock()
	railway.requests = append(railway.requests, r.Method+" "+r.URL.Path)
	railway.mu.Unlock()

	switch {
	case r.URL.Path == "/trains/availability":
		json.NewEncoder(w).Encode([]api.Train{
			{TrainID: 1, TrainName: "Shatabdi Express", Source: "Howrah", Destination: "New Delhi", SeatCapacity: 100, AvailableSeats: 40},
			{TrainID: 2, TrainName: "Rajdhani Express", Source: "Howrah", Destination: "New Delhi", SeatCapacity: 80, AvailableSeats: 5},
		})
	case strings.HasSuffix(r.URL.Path, "/book"):
		json.NewEncoder(w).Encode(api.BookingReceipt{Message: "booked", BookingID: 55, SeatNumbers: []int{11, 12}})
	case strings.HasPrefix(r.URL.Path, "/bookings/mine"):
		json.NewEncoder(w).Encode([]api.Booking{
			{BookingID: 55, TrainName: "Shatabdi Express", NoOfSeats: 2, SeatNumbers: []int{11, 12}},
		})
	case strings.HasPrefix(r.URL.Path, "/bookings/"):
		json.NewEncoder(w).Encode(api.Booking{
			BookingID: 55, TrainName: "Shatabdi Express", NoOfSeats: 2, SeatNumbers: []int{11, 12},
			ArrivalTimeAtSource: "06:00", ArrivalTimeAtDestination: "14:30",
		})
	case r.Method == http.MethodDelete:
		w.Write([]byte(`{"message": "deleted"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found"}`))
	}
}

// count returns how many recorded requests match the given prefix
// (e.g. "DELETE " or "GET /trains").
func (railway *fakeRailway) count(prefix string) int {
	railway.mu.Lock()
	defer railway.mu.Unlock()
	total := 0
	for _, request := range railway.requests {
		if strings.HasPrefix(request, prefix) {
			total++
		}
	}
	return total
}

func newTestModel(t *testing.T, railway *fakeRailway, loggedInRole string) *Model {
	t.Helper()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if loggedInRole != "" {
		if err := store.Save(session.Session{Token: "test-token", Role: loggedInRole}); err != nil {
			t.Fatal(err)
		}
	}

	client, err := api.NewClient(api.Config{
		BaseURL:  railway.server.URL,
		Tokens:   store,
		AdminKey: "test-admin-key",
		Logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	})
	if err != nil {
		t.Fatal(err)
	}

	model, err := NewModel(Config{
		Client:      client,
		Sessions:    store,
		DownloadDir: t.TempDir(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	})
	if err != nil {
		t.Fatal(err)
	}
	return model
}

// press sends one key to the model and runs any command it returns,
// feeding the resulting message back in. This executes the fetch
// round-trip synchronously, which is exactly what bubbletea's runtime
// does asynchronously.
func press(t *testing.T, model *Model, msg tea.KeyMsg) {
	t.Helper()
	_, cmd := model.Update(msg)
	drainCmd(t, model, cmd)
}

func drainCmd(t *testing.T, model *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		message := cmd()
		if message == nil {
			return
		}
		_, cmd = model.Update(message)
	}
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func enter() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func escape() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

// typeStations fills both search fields, closing the suggestion
// dropdowns by picking nothing.
func typeStations(model *Model, source, destination string) {
	model.search.Source = source
	model.search.Destination = destination
	model.search.SourceDropdown.Close()
	model.search.DestinationDropdown.Close()
}

func TestModel_SearchFlow(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "")

	typeStations(model, "Howrah", "New Delhi")
	press(t, model, enter())

	if model.search.Searching {
		t.Error("Searching should be false after the result arrived")
	}
	if len(model.search.Results) != 2 {
		t.Fatalf("Results = %d trains, want 2", len(model.search.Results))
	}
	if model.search.Focus != fieldResults {
		t.Error("focus should move to the result list")
	}
	if railway.count("GET /trains/availability") != 1 {
		t.Errorf("availability requests = %d, want 1", railway.count("GET /trains/availability"))
	}
}

func TestModel_EmptyFormSearchMakesNoRequest(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "")

	press(t, model, enter())

	if railway.count("GET") != 0 {
		t.Errorf("requests = %d, want none for an empty form", railway.count("GET"))
	}
	if model.notice == "" {
		t.Error("empty form submit should set a validation notice")
	}
}

func TestModel_BookingRequiresLogin(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "")

	typeStations(model, "Howrah", "New Delhi")
	press(t, model, enter())

	// Select the first result and try to book.
	press(t, model, enter())

	if model.page != pageLogin {
		t.Errorf("page = %v, want login detour", model.page)
	}
	if railway.count("POST") != 0 {
		t.Errorf("booking requests without a token = %d, want 0", railway.count("POST"))
	}
	if model.pendingBook == nil || model.pendingBook.TrainID != 1 {
		t.Errorf("pendingBook = %+v, want the selected train", model.pendingBook)
	}
}

func TestModel_BookingEndToEnd(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "user")

	typeStations(model, "Howrah", "New Delhi")
	press(t, model, enter())
	press(t, model, enter())

	if model.page != pageBooking {
		t.Fatalf("page = %v, want booking form", model.page)
	}
	if model.booking.TrainID != 1 {
		t.Errorf("booking train = %d, want 1", model.booking.TrainID)
	}

	// Pick three seats and confirm. The round-trip runs booking, then
	// the confirmation fetch.
	press(t, model, runes("3"))
	if model.booking.Seats != 3 {
		t.Fatalf("seats = %d, want 3", model.booking.Seats)
	}
	press(t, model, enter())

	if model.page != pageDetail {
		t.Fatalf("page = %v, want confirmation", model.page)
	}
	if !model.detail.FromBooking {
		t.Error("confirmation should be marked as reached from booking")
	}
	if model.detail.Loading || model.detail.Err != nil {
		t.Fatalf("detail not loaded: loading=%v err=%v", model.detail.Loading, model.detail.Err)
	}
	if model.detail.Booking.BookingID != 55 {
		t.Errorf("confirmation booking = %d, want 55", model.detail.Booking.BookingID)
	}
	if railway.count("POST /trains/1/book") != 1 {
		t.Errorf("booking requests = %d, want exactly 1", railway.count("POST /trains/1/book"))
	}
	if railway.count("GET /bookings/55") != 1 {
		t.Errorf("confirmation fetches = %d, want 1", railway.count("GET /bookings/55"))
	}
}

func TestModel_StaleResultDiscarded(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "")

	typeStations(model, "Howrah", "New Delhi")
	_, cmd := model.Update(enter())
	staleMessage := cmd() // fetch completes while we navigate away

	// Navigating resets the page context and bumps the generation.
	model.Update(tea.KeyMsg{Type: tea.KeyF1})

	model.Update(staleMessage)
	if len(model.search.Results) != 0 {
		t.Error("stale search result should be discarded after navigation")
	}
}

func TestModel_HistoryFlow(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "user")

	press(t, model, tea.KeyMsg{Type: tea.KeyF2})

	if model.page != pageHistory {
		t.Fatalf("page = %v, want history", model.page)
	}
	if len(model.history.Bookings) != 1 {
		t.Fatalf("history = %d bookings, want 1", len(model.history.Bookings))
	}
	if total := model.history.TotalSeats(); total != 2 {
		t.Errorf("TotalSeats() = %d, want 2", total)
	}

	// Opening an entry fetches it fresh.
	press(t, model, enter())
	if model.page != pageDetail {
		t.Fatalf("page = %v, want detail", model.page)
	}
	if model.detail.FromBooking {
		t.Error("detail from history should not show the booking celebration")
	}

	// Esc returns to history, not search.
	press(t, model, escape())
	if model.page != pageHistory {
		t.Errorf("page after esc = %v, want history", model.page)
	}
}

func TestModel_HistoryRequiresLogin(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "")

	press(t, model, tea.KeyMsg{Type: tea.KeyF2})

	if model.page != pageLogin {
		t.Errorf("page = %v, want login detour", model.page)
	}
	if railway.count("GET /bookings/mine") != 0 {
		t.Error("history must not be fetched without a token")
	}
}

func TestModel_AdminRoleGate(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "user")

	press(t, model, tea.KeyMsg{Type: tea.KeyF3})

	if model.page == pageAdmin {
		t.Error("non-admin session should not reach the admin page")
	}
	if railway.count("GET /trains/availability") != 0 {
		t.Error("inventory must not be fetched for non-admin sessions")
	}
}

func TestModel_AdminDeleteCancelMakesNoRequest(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "admin")

	press(t, model, tea.KeyMsg{Type: tea.KeyF3})
	if model.page != pageAdmin {
		t.Fatalf("page = %v, want admin", model.page)
	}

	press(t, model, runes("x"))
	if model.admin.Mode != adminConfirmDelete {
		t.Fatalf("mode = %v, want delete confirmation", model.admin.Mode)
	}

	press(t, model, escape())
	if model.admin.Mode != adminList {
		t.Errorf("mode after cancel = %v, want list", model.admin.Mode)
	}
	if railway.count("DELETE") != 0 {
		t.Errorf("DELETE requests after cancelled confirmation = %d, want 0", railway.count("DELETE"))
	}
}

func TestModel_AdminDeleteRefetchesInventory(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "admin")

	press(t, model, tea.KeyMsg{Type: tea.KeyF3})
	listFetches := railway.count("GET /trains/availability")

	press(t, model, runes("x"))
	press(t, model, enter())

	if railway.count("DELETE /trains/1") != 1 {
		t.Errorf("DELETE requests = %d, want 1", railway.count("DELETE /trains/1"))
	}
	if railway.count("GET /trains/availability") != listFetches+1 {
		t.Error("successful mutation should refetch the full inventory")
	}
	if model.admin.Mode != adminList {
		t.Errorf("mode after mutation = %v, want list", model.admin.Mode)
	}
}

func TestModel_LoginResumesBooking(t *testing.T) {
	railway := newFakeRailway(t)
	model := newTestModel(t, railway, "")

	typeStations(model, "Howrah", "New Delhi")
	press(t, model, enter())
	press(t, model, enter()) // login detour

	if model.page != pageLogin {
		t.Fatalf("page = %v, want login", model.page)
	}

	model.login.Username = "priya"
	model.login.Password = "secret"
	// The fake railway answers every POST with a booking receipt shape;
	// for /login the decoded LoginResult just needs an access token.
	loginMessage := loginResultMsg{
		generation: model.generation,
		result:     api.LoginResult{Access: "fresh-token", Role: "user"},
	}
	_, cmd := model.Update(loginMessage)
	drainCmd(t, model, cmd)

	if model.page != pageBooking {
		t.Errorf("page after login = %v, want resumed booking", model.page)
	}
	if model.booking.TrainID != 1 {
		t.Errorf("resumed booking train = %d, want 1", model.booking.TrainID)
	}
	if !model.sessions.LoggedIn() {
		t.Error("session should be saved after login")
	}
}
