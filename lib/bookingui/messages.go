// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/railbook-project/railbook/lib/api"

// Every fetch result carries the generation counter captured when the
// fetch started. The model discards messages whose generation no
// longer matches — the page that asked for the data is gone.

// searchResultMsg delivers an availability query result.
type searchResultMsg struct {
	generation int
	trains     []api.Train
	err        error
}

// bookResultMsg delivers the outcome of a booking submission.
type bookResultMsg struct {
	generation int
	receipt    api.BookingReceipt
	err        error
}

// bookingFetchedMsg delivers a single booking for the confirmation page.
type bookingFetchedMsg struct {
	generation int
	booking    api.Booking
	err        error
}

// bookingsListMsg delivers the user's booking history.
type bookingsListMsg struct {
	generation int
	bookings   []api.Booking
	err        error
}

// adminListMsg delivers the full train inventory for the admin page.
type adminListMsg struct {
	generation int
	trains     []api.Train
	err        error
}

// adminMutationMsg delivers the outcome of an admin create, delete, or
// capacity update. detail is a human-readable success notice.
type adminMutationMsg struct {
	generation int
	detail     string
	err        error
}

// loginResultMsg delivers the outcome of a login submission.
type loginResultMsg struct {
	generation int
	result     api.LoginResult
	err        error
}

// ticketActionMsg delivers the outcome of a local ticket download or
// print.
type ticketActionMsg struct {
	detail string
	err    error
}
